package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/pkg/errors"

	"github.com/ThomasChiroux/zulu"
)

var inputFormats = flag.String("formats", "", "comma-separated candidate input formats")
var defaultTZ = flag.String("tz", "", "timezone for naive input (name, abbreviation, or \"local\")")
var outputTZ = flag.String("in", "", "timezone for the target output line (default local)")
var layout = flag.String("format", "", "output format, pattern or %-directives (default ISO 8601)")
var jsonOutput = flag.Bool("json", false, "output in JSON")
var until = flag.Bool("until", false, "print time until (or since) the resolved instant")
var fuzzy = flag.Bool("fuzzy", false, "fall back to natural-language parsing")

func main() {
	var args []string
	var text []string
	for _, arg := range os.Args[1:] {
		if len(text) > 0 || !strings.HasPrefix(arg, "-") {
			text = append(text, arg)
		} else {
			args = append(args, arg)
		}
	}
	flag.CommandLine.Parse(args)

	now := zulu.Now()
	input := now

	if len(text) > 0 {
		s := strings.Join(text, " ")

		var opts []zulu.ParseOption
		if *inputFormats != "" {
			opts = append(opts, zulu.WithFormats(strings.Split(*inputFormats, ",")...))
		}
		if *defaultTZ != "" {
			opts = append(opts, zulu.WithDefaultZone(*defaultTZ))
		}

		var err error
		input, err = zulu.Parse(s, opts...)
		if err != nil && *fuzzy {
			input, err = parseFuzzy(s)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	if *until {
		fmt.Println(input.Diff(now))
		return
	}

	outLoc := time.Local
	if *outputTZ != "" {
		var err error
		outLoc, err = zulu.LoadZone(*outputTZ)
		if err != nil {
			log.Fatal(errors.Wrap(err, "resolve output timezone"))
		}
	}

	target := input.FormatIn(*layout, outLoc)
	local := input.FormatIn(*layout, time.Local)
	utc := input.ISOFormat()
	unix := input.Unix()
	unixMillis := input.UnixMicro() / 1_000
	unixMicros := input.UnixMicro()
	unixNanos := input.Time().UnixNano()

	if *jsonOutput {
		out := struct {
			Target     string
			Local      string
			UTC        string
			Unix       int64
			UnixMillis int64
			UnixMicros int64
			UnixNanos  int64
		}{target, local, utc, unix, unixMillis, unixMicros, unixNanos}
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println(target)
	fmt.Println(local)
	fmt.Println(utc)
	fmt.Printf("s\t%d\n", unix)
	fmt.Printf("ms\t%d\n", unixMillis)
	fmt.Printf("µs\t%d\n", unixMicros)
	fmt.Printf("ns\t%d\n", unixNanos)
}

func parseFuzzy(s string) (zulu.Instant, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(s, time.Now())
	if err != nil {
		return zulu.Instant{}, err
	}
	if r == nil {
		return zulu.Instant{}, errors.Errorf("can not parse %q", s)
	}
	return zulu.FromTime(r.Time), nil
}
