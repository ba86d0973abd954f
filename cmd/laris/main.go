/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/larisphp/laris/pkg/cli"

func main() {
	cli.Execute()
}
