package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/editorconfig/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
