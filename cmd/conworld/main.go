/*
Conworld starts an interactive conworld engine session.

It reads in a world file and starts the game in the starting room given by
the world. The interpreter will then print what is happening in the game to
stdout and read command input from stdin until "QUIT" is input.

Usage:

	conworld [flags]

The flags are:

	-v, --version
		Give the current version of conworld and then exit.

	-w, --world FILE
		Use the provided CWD resource file for the world. Defaults to the
		file "world.cwd" in the current working directory.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input, even if launched
		in a tty with stdin and stdout.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/rolph-recto/conworld"
	"github.com/rolph-recto/conworld/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode = ExitSuccess

	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of conworld and then exit.")
	worldFile   = pflag.StringP("world", "w", "world.cwd", "the CWD world data file that contains the definition of the world")
	forceDirect = pflag.BoolP("direct", "d", false, "force reading directly from stdin instead of going through GNU readline where possible")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		}
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	gameEng, initErr := conworld.New(os.Stdin, os.Stdout, *worldFile, *forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	err := gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
