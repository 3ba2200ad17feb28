package setup

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/slp/internal/errors"
	"github.com/PolarWolf314/slp/internal/optiontag"
	"github.com/PolarWolf314/slp/internal/secrets"
)

const (
	argSecret  = "secret"
	kwargBytes = "bytes"
)

// Directive asks for a generated password of Bytes entropy for Title.
type Directive struct {
	Title string
	Bytes int
}

// Plan inspects every secrets entry and returns the passwords to generate.
// Unknown option tag arguments are added to report. A bytes option that is
// not a positive integer is returned as an error immediately.
func Plan(store *secrets.Store, report *Report, defaultBytes int) ([]Directive, error) {
	var directives []Directive

	for _, entry := range store.Entries() {
		generate, nbytes, err := planEntry(entry, report)
		if err != nil {
			return nil, err
		}
		if !generate {
			continue
		}
		if nbytes == 0 {
			nbytes = defaultBytes
		}
		directives = append(directives, Directive{Title: entry.Title, Bytes: nbytes})
	}

	return directives, nil
}

func planEntry(entry secrets.Entry, report *Report) (bool, int, error) {
	if entry.Value == "" {
		return true, 0, nil
	}

	tag := optiontag.Parse(entry.Value)
	switch tag.Kind {
	case optiontag.NotTag:
		return false, 0, nil
	case optiontag.Empty:
		return true, 0, nil
	}

	generate := false
	var unknownArgs []string
	for _, arg := range tag.Args {
		if arg == argSecret {
			generate = true
			continue
		}
		unknownArgs = append(unknownArgs, arg)
	}
	if len(unknownArgs) > 0 {
		report.Addf("unknown argument in option tag for %q: [%s]; only <%s> is supported",
			entry.Title, strings.Join(unknownArgs, ", "), argSecret)
	}

	nbytes := 0
	var unknownKwargs []string
	for key, value := range tag.Kwargs {
		if key != kwargBytes {
			unknownKwargs = append(unknownKwargs, key+":"+value)
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return false, 0, fmt.Errorf("%w: option tag for %q: %s must be a positive integer, got %q",
				kerrors.ErrValidation, entry.Title, kwargBytes, value)
		}
		generate = true
		nbytes = n
	}
	if len(unknownKwargs) > 0 {
		slices.Sort(unknownKwargs)
		report.Addf("unknown keyword argument in option tag for %q: {%s}; only <%s:INT> is supported",
			entry.Title, strings.Join(unknownKwargs, ", "), kwargBytes)
	}

	return generate, nbytes, nil
}

// Resolve plans password generation and, when report is still empty after
// every entry was inspected, generates the passwords and stores them.
// It returns the titles that received a generated password.
func Resolve(store *secrets.Store, report *Report, defaultBytes int) ([]string, error) {
	directives, err := Plan(store, report, defaultBytes)
	if err != nil {
		return nil, err
	}
	if !report.Empty() {
		return nil, nil
	}

	generated := make(map[string]string, len(directives))
	for _, d := range directives {
		pw, err := secrets.GeneratePassword(d.Bytes)
		if err != nil {
			return nil, fmt.Errorf("generating password for %q: %w", d.Title, err)
		}
		generated[d.Title] = pw
	}

	titles := make([]string, 0, len(directives))
	for _, d := range directives {
		store.Set(d.Title, generated[d.Title])
		titles = append(titles, d.Title)
	}
	return titles, nil
}
