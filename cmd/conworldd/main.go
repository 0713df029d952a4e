/*
Conworldd starts a conworld server and begins listening for new connections.

Usage:

	conworldd [flags]
	conworldd [flags] -l [[ADDRESS]:PORT]

Once started, the conworld server listens for HTTP requests and responds to
them using REST protocol. Each POST to /sessions creates a fresh game
session from the configured world file; commands are then POSTed to the
session and the narration from each command is returned as JSON.

By default the server listens on localhost:8080. This can be changed with
the --listen/-l flag or via environment variable.

The flags are:

	-v, --version
		Give the current version of the conworld server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable CONWORLD_LISTEN_ADDRESS, and if that is not given, will
		default to localhost:8080.

	-w, --world FILE
		Use the provided CWD resource file for session worlds. If not
		given, will default to the value of environment variable
		CONWORLD_WORLD_FILE, and if that is not given, will default to the
		file "world.cwd" in the current working directory.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rolph-recto/conworld/internal/version"
	"github.com/rolph-recto/conworld/server"
)

const (
	EnvListen = "CONWORLD_LISTEN_ADDRESS"
	EnvWorld  = "CONWORLD_WORLD_FILE"

	defaultListen = "localhost:8080"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of conworld server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagWorld   = pflag.StringP("world", "w", "", "Use the given CWD world file for sessions.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr == "" {
		listenAddr = defaultListen
	}

	bindParts := strings.SplitN(listenAddr, ":", 2)
	if len(bindParts) != 2 {
		fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
		os.Exit(1)
	}
	if _, err := strconv.Atoi(bindParts[1]); err != nil {
		fmt.Fprintf(os.Stderr, "%q is not a valid port number.\nDo -h for help.\n", bindParts[1])
		os.Exit(1)
	}

	worldFile := os.Getenv(EnvWorld)
	if pflag.Lookup("world").Changed {
		worldFile = *flagWorld
	}
	if worldFile == "" {
		worldFile = "world.cwd"
	}

	cws, err := server.New(worldFile)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}

	log.Printf("INFO  Starting conworld server %s...", version.Current)
	if err := cws.ServeForever(listenAddr); err != nil {
		log.Fatalf("FATAL %s", err.Error())
	}
}
