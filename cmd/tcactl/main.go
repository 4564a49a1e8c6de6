// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tcactl drives the expanders and the tick sampler of the board from the
// command line.
//
// Any function of the host binding can be called by name:
//
//	tcactl change_output_mask 0 0x0800 0
//	tcactl get_number EXT21
//
// plus a few commands of its own; run tcactl list to see them all.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/GermanBionicSystems/tcaio/hostbind"
	"github.com/GermanBionicSystems/tcaio/tca"
	"github.com/GermanBionicSystems/tcaio/tca9555/tca9555test"
	"github.com/GermanBionicSystems/tcaio/ticktimer"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type env struct {
	mod   *hostbind.Module
	out   io.Writer
	n     uint
	watch time.Duration
	log   *logrus.Entry
}

type command struct {
	help string
	run  func(e *env, args []string) error
}

// commands holds the commands that are not host binding functions.
var commands = map[string]command{
	"reset": {"put every chip in its board default state", func(e *env, args []string) error {
		return e.mod.Expander.Reset()
	}},
	"sample": {"run the tick sampler for -watch, measuring -n ticks first", func(e *env, args []string) error {
		if uint64(e.n) > math.MaxUint32 {
			return fmt.Errorf("%w: -n only supports 32 bits", tca.ErrValue)
		}
		s := e.mod.Sampler
		if err := s.Start(); err != nil {
			return err
		}
		defer s.Stop()
		if e.n != 0 {
			s.Measure(uint32(e.n))
		}
		t := time.NewTicker(10 * time.Millisecond)
		defer t.Stop()
		end := time.After(e.watch)
		for {
			select {
			case <-t.C:
				s.Poll()
			case <-end:
				e.log.WithField("ticks", s.Ticks()).Info("sampler stopped")
				return nil
			}
		}
	}},
}

func init() {
	commands["list"] = command{"list the commands and functions", list}
}

func list(e *env, args []string) error {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(e.out, "%-24s %s\n", n, commands[n].help)
	}
	for _, n := range hostbind.Names() {
		u, _ := hostbind.Usage(n)
		fmt.Fprintf(e.out, "%s\n", u)
	}
	return nil
}

func logger(level int) *logrus.Entry {
	logrus.ErrorKey = "$error"
	l := logrus.New()
	l.SetOutput(colorable.NewColorableStderr())
	l.SetLevel(logrus.Level(level))
	f := new(prefixed.TextFormatter)
	f.TimestampFormat = "2006-01-02 15:04:05"
	f.FullTimestamp = true
	f.SpacePadding = 50
	l.SetFormatter(f)
	return l.WithField("prefix", "tcactl")
}

func openBus(name string, sim bool) (i2c.BusCloser, error) {
	if sim {
		var addrs []uint16
		for i := 0; i < tca.ChipCount; i++ {
			a, err := tca.ChipAddress(i)
			if err != nil {
				return nil, err
			}
			addrs = append(addrs, a)
		}
		return tca9555test.New(addrs...), nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

func mainImpl(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tcactl", flag.ContinueOnError)
	fs.SetOutput(out)
	i2cName := fs.String("i2c", "", "I²C bus to use")
	sim := fs.Bool("sim", false, "use a simulated bus instead of the host's")
	loglevel := fs.Int("loglevel", int(logrus.WarnLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
	n := fs.Uint("n", 0, "number of ticks to measure")
	watch := fs.Duration("watch", 0, "how long to keep sampling or redrawing")
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: tcactl [flags] <command> [args...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	log := logger(*loglevel)

	bus, err := openBus(*i2cName, *sim)
	if err != nil {
		return errors.Wrap(err, "opening I²C bus")
	}
	defer bus.Close()

	exp, err := tca.New(bus, &tca.Opts{Log: log})
	if err != nil {
		return errors.Wrap(err, "opening expanders")
	}
	defer exp.Close()

	e := &env{
		mod: &hostbind.Module{
			Expander: exp,
			Sampler:  ticktimer.New(&ticktimer.Opts{Out: out, Log: log}),
		},
		out:   out,
		n:     *n,
		watch: *watch,
		log:   log,
	}
	name := fs.Arg(0)
	if c, ok := commands[name]; ok {
		return errors.Wrap(c.run(e, fs.Args()[1:]), name)
	}
	res, err := e.mod.Call(name, fs.Args()[1:]...)
	if err != nil {
		return errors.Wrap(err, name)
	}
	if res != "" {
		fmt.Fprintln(out, res)
	}
	return nil
}

func main() {
	if err := mainImpl(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tcactl: %s.\n", err)
		os.Exit(1)
	}
}
