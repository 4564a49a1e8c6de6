// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback && !tca9555_nolocalmemory

package hostbind

import "github.com/GermanBionicSystems/tcaio/tca"

func init() {
	functions["stored_output"] = function{[]string{"chip"}, chipFunc((*tca.Expander).StoredOutput)}
	functions["stored_config"] = function{[]string{"chip"}, chipFunc((*tca.Expander).StoredConfig)}
	functions["stored_polarity"] = function{[]string{"chip"}, chipFunc((*tca.Expander).StoredPolarity)}
}
