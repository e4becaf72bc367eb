package main

import (
	"flag"
	"fmt"
	"os"

	"lumen/colors"
	"lumen/internal/compiler"
	"lumen/internal/config"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")

	configFile := flag.String("config", "", "Path to a lumen.toml (default: next to the source file)")
	backend := flag.String("backend", "", "Code generator: qbe or llvm")
	output := flag.String("o", "", "Output file (default: source file with the backend extension)")
	dumpTokens := flag.Bool("tokens", false, "Print every token")
	saveAST := flag.Bool("save-ast", false, "Write the AST as JSON next to the source file")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	initConfig := flag.Bool("init", false, "Write a default lumen.toml to the current directory")

	flag.Parse()

	if *noColor {
		colors.SetEnabled(false)
	}

	// Handle version
	if *showVersion {
		fmt.Printf("lumen compiler version %s\n", version)
		os.Exit(0)
	}

	if *initConfig {
		if err := config.Save(".", config.Default()); err != nil {
			colors.RED.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		colors.GREEN.Printf("wrote %s\n", config.FileName)
		os.Exit(0)
	}

	// Get entry file
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lumenc [options] <file.lm>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Compile
	result, err := compiler.Compile(&compiler.Options{
		EntryFile:  args[0],
		ConfigFile: *configFile,
		Backend:    *backend,
		Output:     *output,
		Debug:      *debug,
		Tokens:     *dumpTokens,
		SaveAST:    *saveAST,
	})
	if err != nil {
		colors.RED.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
	if *debug {
		colors.GREEN.Printf("wrote %s\n", result.OutputPath)
	}
}
