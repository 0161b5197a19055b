// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/strassen/matrixio"
	"github.com/katalvlaran/strassen/strassen"
)

// run reads the operands, multiplies them with preset code and writes the
// preset name, the optional product and the elapsed milliseconds to out.
func run(out io.Writer, log *slog.Logger, path string, code int, cfg config) error {
	s, err := strassen.Preset(code, strassen.WithThreshold(cfg.Threshold), strassen.WithLogger(log))
	if err != nil {
		return err
	}

	a, b, err := matrixio.ReadFile(path)
	if err != nil {
		return err
	}
	defer a.Destroy()
	defer b.Destroy()
	log.Debug("operands loaded", "path", path, "size", a.Size(), "strategy", code)

	start := time.Now()
	fmt.Fprintln(out, s)
	c, err := s.Multiply(a, b)
	if err != nil {
		return err
	}
	defer c.Destroy()

	if cfg.Print {
		if err = matrixio.Write(out, c); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	log.Info("multiplied", "size", c.Size(), "strategy", s.String(), "elapsed", elapsed)
	fmt.Fprintf(out, "%d ms\n", elapsed.Milliseconds())

	return nil
}
