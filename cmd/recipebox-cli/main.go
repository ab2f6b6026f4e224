// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the recipebox command-line client.
package main

import "recipebox/cmd/recipebox-cli/cmd"

func main() {
	cmd.Execute()
}
