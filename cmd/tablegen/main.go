/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command tablegen projects a YAML table definition into the wire-format
// CreateTable request and prints it as JSON. Encryption keys referenced by
// the definition (keyEnv) are resolved from the environment, optionally
// loaded from a .env file first.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/suparena/tablekit"
	"github.com/suparena/tablekit/config"
	_ "github.com/suparena/tablekit/serde" // register built-in serializers
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	schemaFlag  = flag.String("schema", "", "Path to the YAML table definition")
	envFlag     = flag.String("env", "", "Optional .env file to load before resolving keys")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := tablekit.GetVersionInfo()
		fmt.Printf("TableKit tablegen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *schemaFlag == "" {
		fmt.Fprintln(os.Stderr, "tablegen: -schema is required")
		flag.Usage()
		os.Exit(2)
	}

	if *envFlag != "" {
		if err := godotenv.Load(*envFlag); err != nil {
			fmt.Fprintf(os.Stderr, "tablegen: load %s: %v\n", *envFlag, err)
			os.Exit(1)
		}
	} else {
		_ = godotenv.Load()
	}

	def, err := config.LoadTable(*schemaFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tablegen: %v\n", err)
		os.Exit(1)
	}

	ws, err := def.Table.ToWireSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tablegen: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(ws.CreateTableInput(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tablegen: encode wire schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
