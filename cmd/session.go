package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockbook"
	"github.com/etnz/stockbook/config"
	"github.com/rs/zerolog"
)

// session is the state shared by the commands while the program runs: the
// books themselves plus the console they talk to.
type session struct {
	dir      string
	currency string
	state    *stockbook.State
	in       *bufio.Reader
	out      io.Writer
	log      zerolog.Logger
	pretty   bool
	markdown *glamour.TermRenderer

	dirty bool // the state changed since it was loaded
	done  bool // the end command ran
}

func newSession(cfg *config.Config, in io.Reader, out io.Writer, log zerolog.Logger) *session {
	return &session{
		dir:      cfg.Dir,
		currency: cfg.Currency,
		state:    stockbook.NewState(cfg.Currency),
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		pretty:   cfg.Pretty,
	}
}

// sessionFrom extracts the session passed to Execute.
func sessionFrom(args []interface{}) *session {
	if len(args) == 0 {
		return nil
	}
	s, _ := args[0].(*session)
	return s
}

// prompt prints label and reads one line of input, without its line ending.
func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask sets *value from the flag when it was given, or from the user otherwise.
func (s *session) ask(f *flag.FlagSet, name string, value *string, label string) error {
	if isSet(f, name) {
		return nil
	}
	v, err := s.prompt(label)
	if err != nil {
		return err
	}
	*value = v
	return nil
}

func isSet(f *flag.FlagSet, name string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

func (s *session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }
func (s *session) println(a ...any)               { fmt.Fprintln(s.out, a...) }

// printMarkdown prints md, rendered for the terminal when pretty output is on.
func (s *session) printMarkdown(md string) {
	if s.pretty {
		if s.markdown == nil {
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
			if err != nil {
				s.log.Warn().Err(err).Msg("markdown renderer unavailable, falling back to plain text")
				s.pretty = false
				fmt.Fprint(s.out, md)
				return
			}
			s.markdown = r
		}
		out, err := s.markdown.Render(md)
		if err == nil {
			fmt.Fprint(s.out, out)
			return
		}
		s.log.Warn().Err(err).Msg("markdown rendering failed")
	}
	fmt.Fprint(s.out, md)
}

// record logs a completed operation and marks the state for saving.
func (s *session) record(op stockbook.Operation) {
	s.dirty = true
	s.log.Info().Str("command", string(op.What())).Str("operation", op.String()).Msg("operation recorded")
}

// load replaces the session state with the one saved in the data directory.
func (s *session) load() error {
	state, err := stockbook.Load(s.dir, s.currency)
	s.state = state
	if err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("load failed")
		return err
	}
	s.log.Debug().Str("dir", s.dir).
		Int("products", state.Warehouse.Len()).
		Int("operations", state.Operations.Len()).
		Msg("state loaded")
	return nil
}

// save writes the session state to the data directory.
func (s *session) save() error {
	if err := stockbook.Save(s.dir, s.state); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("save failed")
		return err
	}
	s.dirty = false
	s.log.Debug().Str("dir", s.dir).Msg("state saved")
	return nil
}
