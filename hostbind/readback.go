// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback

package hostbind

import "github.com/GermanBionicSystems/tcaio/tca"

func init() {
	functions["read_input"] = function{[]string{"chip"}, chipFunc((*tca.Expander).ReadInput)}
	functions["read_output"] = function{[]string{"chip"}, chipFunc((*tca.Expander).ReadOutput)}
	functions["read_config"] = function{[]string{"chip"}, chipFunc((*tca.Expander).ReadConfig)}
	functions["read_polarity"] = function{[]string{"chip"}, chipFunc((*tca.Expander).ReadPolarity)}
}
