package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
	"github.com/cape-open/cobia/inproc"
	"github.com/cape-open/cobia/pmc"
	"github.com/cape-open/cobia/registry"
)

func main() {
	var (
		registryFile = flag.String("registry", "", "Path to registry snapshot (TOML)")
		category     = flag.String("category", "", "Only list components in this category (UUID)")
		uuidArg      = flag.String("uuid", "", "Show a single component (UUID)")
		jsonOut      = flag.Bool("json", false, "Export as JSON")
		verbose      = flag.Bool("v", false, "Verbose logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *registryFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: capelist -registry <snapshot.toml> [-category uuid] [-uuid uuid] [-json]")
		fmt.Fprintln(os.Stderr, "       capelist -registry <snapshot.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			cobia.SetLogger(logger)
			registry.SetLogger(logger)
			pmc.SetLogger(logger)
			inproc.SetLogger(logger)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*registryFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*registryFile, *category, *uuidArg, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(registryFile, category, uuidArg string, jsonOut bool) error {
	cleanup, err := startMiddleware(registryFile)
	if err != nil {
		return err
	}
	defer cleanup()

	details, err := collect(category, uuidArg)
	if err != nil {
		return err
	}

	if jsonOut {
		data, err := pmc.ExportJSON(details)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Middleware: %s\n", cobia.Version())
	fmt.Printf("Registered components: %d\n\n", len(details))
	for _, d := range details {
		printDetails(d)
	}
	return nil
}

// startMiddleware installs the in-process backend from the snapshot and
// opens the initialization bracket. The returned function closes it.
func startMiddleware(registryFile string) (func(), error) {
	cfg, err := inproc.LoadConfig(registryFile)
	if err != nil {
		return nil, err
	}
	inproc.NewBackend(cfg).Install()
	if ierr := cobia.Initialize(); ierr != nil {
		return nil, fmt.Errorf("initialize: %s", ierr.Error())
	}
	return cobia.Cleanup, nil
}

func collect(category, uuidArg string) ([]pmc.RegistrationDetails, error) {
	if uuidArg != "" {
		u, err := capi.ParseUUID(uuidArg)
		if err != nil {
			return nil, fmt.Errorf("bad uuid: %w", err)
		}
		d, derr := pmc.ByUUID(u)
		if derr != nil {
			return nil, fmt.Errorf("lookup %s: %s", uuidArg, derr.Error())
		}
		return []pmc.RegistrationDetails{d}, nil
	}
	if category != "" {
		u, err := capi.ParseUUID(category)
		if err != nil {
			return nil, fmt.Errorf("bad category uuid: %w", err)
		}
		details, derr := pmc.EnumerateCategory(u)
		if derr != nil {
			return nil, fmt.Errorf("enumerate: %s", derr.Error())
		}
		return details, nil
	}
	details, derr := pmc.Enumerate()
	if derr != nil {
		return nil, fmt.Errorf("enumerate: %s", derr.Error())
	}
	return details, nil
}

func printDetails(d pmc.RegistrationDetails) {
	fmt.Printf("%s (%s)\n", d.Name, d.ID)
	if d.Description != "" {
		fmt.Printf("  %s\n", d.Description)
	}
	if d.ComponentVersion != "" {
		fmt.Printf("  version: %s\n", d.ComponentVersion)
	}
	if d.CapeVersion != "" {
		fmt.Printf("  CAPE-OPEN version: %s\n", d.CapeVersion)
	}
	if d.ProgID != "" {
		fmt.Printf("  prog id: %s\n", d.ProgID)
	}
	if len(d.CategoryIDs) > 0 {
		fmt.Printf("  categories: %s\n", strings.Join(d.CategoryIDs, ", "))
	}
	for _, loc := range d.Locations {
		fmt.Printf("  %s: %s\n", loc.ServiceType, loc.Path)
	}
	hive := "current user"
	if d.AllUsers {
		hive = "all users"
	}
	fmt.Printf("  registered for: %s\n\n", hive)
}
