/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Command radixgen regenerates the Radix Colors CSS variable files
// consumed by Tailwind CSS v4 themes.
package main

import (
	"os"

	"github.com/lilingxi01/radix-colors-tailwind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
