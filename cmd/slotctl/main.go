package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/youngslohmlife/opnet-storage/config"
	"github.com/youngslohmlife/opnet-storage/observability/logging"
	"github.com/youngslohmlife/opnet-storage/slot"
	"github.com/youngslohmlife/opnet-storage/storage"
)

func main() {
	args := os.Args[1:]
	configPath := "slotctl.toml"
	args, configPath = applyGlobalFlags(args, configPath)

	if len(args) < 1 {
		printUsage()
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.Setup("slotctl", cfg.Backend)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeStore()

	root := slot.At(store, cfg.Pointer)

	command := args[0]
	switch command {
	case "get":
		if len(args) < 2 {
			fmt.Println("Error: Please provide a slot path.")
			printUsage()
			return
		}
		target := resolvePath(root, args[1])
		fmt.Println(target.Get().Hex())
	case "set":
		if len(args) < 3 {
			fmt.Println("Error: Please provide a slot path and a value.")
			printUsage()
			return
		}
		value, err := parseWord(args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		target := resolvePath(root, args[1])
		target.Set(value)
		logger.Info("slot written", "path", args[1], "subkey", target.SubKey().Hex())
	case "nullify":
		if len(args) < 2 {
			fmt.Println("Error: Please provide a slot path.")
			printUsage()
			return
		}
		target := resolvePath(root, args[1])
		target.Nullify()
		logger.Info("slot nullified", "path", args[1], "subkey", target.SubKey().Hex())
	case "length":
		if len(args) < 2 {
			fmt.Println("Error: Please provide a list path.")
			printUsage()
			return
		}
		fmt.Println(resolvePath(root, args[1]).Length())
	case "list":
		if len(args) < 2 {
			fmt.Println("Error: Please provide a list path.")
			printUsage()
			return
		}
		for i, word := range resolvePath(root, args[1]).GetAll() {
			fmt.Printf("%d\t%s\n", i, word.Hex())
		}
	case "append":
		if len(args) < 3 {
			fmt.Println("Error: Please provide a list path and a value.")
			printUsage()
			return
		}
		value, err := parseWord(args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		anchor := resolvePath(root, args[1])
		anchor.Append(value)
		logger.Info("element appended", "path", args[1], "length", anchor.Length())
	case "alloc-preview":
		if len(args) < 2 {
			fmt.Println("Error: Please provide at least one region name.")
			printUsage()
			return
		}
		for _, assignment := range previewAllocations(args[1:]) {
			fmt.Printf("%d\t%s\n", assignment.Pointer, assignment.Region)
		}
	case "subkey":
		if len(args) < 2 {
			fmt.Println("Error: Please provide a slot path.")
			printUsage()
			return
		}
		target := resolvePath(root, args[1])
		fmt.Printf("pointer=%d subkey=%s\n", target.Pointer(), target.SubKey().Hex())
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.Instrument(storage.NewMemStore(), cfg.Backend), func() {}, nil
	case config.BackendLevelDB:
		store, err := storage.NewLevelDBStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return storage.Instrument(store, cfg.Backend), func() { store.Close() }, nil
	case config.BackendBolt:
		store, err := storage.NewBoltStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return storage.Instrument(store, cfg.Backend), func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func applyGlobalFlags(args []string, configPath string) ([]string, string) {
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			configPath = args[i+1]
			i++
			continue
		}
		remaining = append(remaining, args[i])
	}
	return remaining, configPath
}

func parseWord(text string) (common.Hash, error) {
	word, err := wordFromText(text)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid value %q: %w", text, err)
	}
	return word, nil
}

func printUsage() {
	fmt.Println(`Usage: slotctl [--config <path>] <command> [args]

Commands:
  get <path>            Read the word at a keyword path.
  set <path> <value>    Write a word (0x-hex or decimal) at a keyword path.
  nullify <path>        Write the zero word at a keyword path.
  length <path>         Read a list's element count.
  list <path>           Print every list element in index order.
  append <path> <value> Append a word to a list.
  subkey <path>         Print the derived (pointer, subkey) address.
  alloc-preview <region> [region...]
                        Print the namespace pointer each region would be
                        assigned when allocated in the given order.

Paths are /-separated keywords resolved from the configured namespace root,
e.g. "balances/alice".`)
}
