// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/tcaio/tca"
)

func TestMainImpl(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"-sim", "get_number", "EXT21"}, "5\n"},
		{[]string{"-sim", "get_chip", "TCA9555_26_P0_1"}, "1\n"},
		{[]string{"-sim", "change_output_mask", "0", "1", "0"}, ""},
		{[]string{"-sim", "reset"}, ""},
	} {
		buf := bytes.Buffer{}
		if err := mainImpl(test.args, &buf); err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if got := buf.String(); got != test.want {
			t.Errorf("%v: %q, want %q", test.args, got, test.want)
		}
	}
}

func TestMainImplErrors(t *testing.T) {
	buf := bytes.Buffer{}
	if err := mainImpl([]string{"-sim"}, &buf); err == nil {
		t.Fatal("expected missing command")
	}
	err := mainImpl([]string{"-sim", "change_config_mask", "7", "1", "1"}, &buf)
	if !errors.Is(err, tca.ErrOutOfRange) {
		t.Fatalf("got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "change_config_mask: ") {
		t.Fatalf("got %q", err)
	}
}

func TestList(t *testing.T) {
	buf := bytes.Buffer{}
	if err := mainImpl([]string{"-sim", "list"}, &buf); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"reset", "sample", "measure(n_ticks)", "get_number(pin)"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("%q missing", s)
		}
	}
}

func TestSample(t *testing.T) {
	buf := bytes.Buffer{}
	if err := mainImpl([]string{"-sim", "-n", "5", "-watch", "20ms", "sample"}, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "5 ticks in ") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestSampleTooManyTicks(t *testing.T) {
	buf := bytes.Buffer{}
	err := mainImpl([]string{"-sim", "-n", "4294967296", "sample"}, &buf)
	if err == nil {
		t.Fatal("expected error")
	}
	// On 32 bit hosts the flag itself does not parse.
	if strconv.IntSize == 64 && !errors.Is(err, tca.ErrValue) {
		t.Fatalf("got %v, want %v", err, tca.ErrValue)
	}
	if buf.Len() != 0 && strconv.IntSize == 64 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
