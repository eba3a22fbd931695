// Command fixedlist builds and inspects fixed-capacity list files.
//
// A list file is write-once: create builds and seals the file in one
// shot, the remaining commands open it read-only.
//
//	fixedlist create <path> [-c N] [--seal] [--compress] [record ...]
//	fixedlist get <path> -i <index> [--unseal]
//	fixedlist dump <path> [--unseal]
//	fixedlist stat <path>
//
// With no record arguments, create reads one record per line from stdin.
// dump prints a JSON array (record bytes base64-encoded, as Go encodes
// []byte); stat prints the Verify summary as JSON.
package main

import (
	"bufio"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	flag "github.com/spf13/pflag"

	"github.com/jpl-au/fixedlist"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "create":
		err = cmdCreate(os.Args[2:])
	case "get":
		err = cmdGet(os.Args[2:])
	case "dump":
		err = cmdDump(os.Args[2:])
	case "stat":
		err = cmdStat(os.Args[2:])
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage(w *os.File) {
	fmt.Fprintln(w, "Usage: fixedlist <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create <path> [-c N] [record ...]   create a list and append records")
	fmt.Fprintln(w, "  get <path> -i <index>               print one record")
	fmt.Fprintln(w, "  dump <path>                         print all records as JSON")
	fmt.Fprintln(w, "  stat <path>                         verify the file and print a summary")
}

func cmdCreate(args []string) error {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	capacity := flags.IntP("capacity", "c", 0, "list capacity (default: number of records)")
	syncWrites := flags.Bool("sync", false, "fsync after every append")
	seal := flags.Bool("seal", false, "wrap each record in a checksum envelope")
	compress := flags.Bool("compress", false, "zstd-compress sealed records (implies --seal)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return fmt.Errorf("create: missing path")
	}
	path := flags.Arg(0)

	var records [][]byte
	if flags.NArg() > 1 {
		for _, a := range flags.Args()[1:] {
			records = append(records, []byte(a))
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line != "" {
				records = append(records, []byte(line))
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	n := *capacity
	if n == 0 {
		n = len(records)
	}

	list, err := fixedlist.Create(path, n, fixedlist.Config{SyncWrites: *syncWrites, LockFile: true})
	if err != nil {
		return err
	}
	defer list.Close()

	for _, record := range records {
		if *seal || *compress {
			record, err = fixedlist.Seal(record, fixedlist.SealOptions{Compress: *compress})
			if err != nil {
				return err
			}
		}
		if err := list.Append(record); err != nil {
			return err
		}
	}

	if err := list.Close(); err != nil {
		return err
	}
	fmt.Printf("created %s: %d/%d records\n", path, len(records), n)
	return nil
}

func cmdGet(args []string) error {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	index := flags.IntP("index", "i", -1, "record index")
	unseal := flags.Bool("unseal", false, "unwrap the checksum envelope")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("get: missing path")
	}
	if *index < 0 {
		return fmt.Errorf("get: missing --index")
	}

	list, err := fixedlist.Open(flags.Arg(0), fixedlist.Config{})
	if err != nil {
		return err
	}
	defer list.Close()

	record, err := list.Get(*index)
	if err != nil {
		return err
	}
	if *unseal {
		if record, err = fixedlist.Unseal(record); err != nil {
			return err
		}
	}
	os.Stdout.Write(record)
	fmt.Println()
	return nil
}

func cmdDump(args []string) error {
	flags := flag.NewFlagSet("dump", flag.ContinueOnError)
	unseal := flags.Bool("unseal", false, "unwrap checksum envelopes")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("dump: missing path")
	}

	list, err := fixedlist.Open(flags.Arg(0), fixedlist.Config{})
	if err != nil {
		return err
	}
	defer list.Close()

	var records [][]byte
	for record, err := range list.Iterate() {
		if err != nil {
			return err
		}
		if *unseal {
			if record, err = fixedlist.Unseal(record); err != nil {
				return err
			}
		}
		records = append(records, record)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	fmt.Println()
	return nil
}

func cmdStat(args []string) error {
	flags := flag.NewFlagSet("stat", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("stat: missing path")
	}

	list, err := fixedlist.Open(flags.Arg(0), fixedlist.Config{})
	if err != nil {
		return err
	}
	defer list.Close()

	stats, err := list.Verify()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	fmt.Println()
	return nil
}
