/*
 * Synacor VM - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */
package main

import (
	"log/slog"
	"os"

	"github.com/rcornwell/synacorvm/util/logger"
	"github.com/rcornwell/synacorvm/vm"
	"github.com/rcornwell/synacorvm/vm/image"
	"github.com/rcornwell/synacorvm/vm/vmerrors"
)

// defaultImage is the relative path loaded when no image is named on the
// command line.
const defaultImage = "./docs/challenge.bin"

var log *slog.Logger

func main() {
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	log = slog.New(logger.NewHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(log)

	path := defaultImage
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	os.Exit(run(path))
}

// run loads and executes the image at path against the process's real
// stdio, returning the process exit code.
func run(path string) int {
	f, err := os.Open(path)
	if err != nil {
		err = &vmerrors.LoadFault{Err: err}
		log.Error("load fault", "path", path, "error", err)
		return 1
	}
	defer f.Close()

	words, err := image.Load(f)
	if err != nil {
		err = &vmerrors.LoadFault{Err: err}
		log.Error("load fault", "path", path, "error", err)
		return 1
	}

	log.Info("loaded image", "path", path)

	machine := vm.New(words)
	if err := machine.Run(os.Stdin, os.Stdout); err != nil {
		log.Error("machine fault", "error", err)
		return 1
	}

	log.Info("machine halted")
	return 0
}
