// Command keenquotes reads prose on stdin and writes it to stdout with
// straight quotation marks curled. Diagnostics go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/sdob/keenquotes"
	"github.com/sdob/keenquotes/lex"
	"github.com/sdob/keenquotes/parser"
)

const version = "1.0.0"

// settings collects the command-line configuration.
type settings struct {
	entities bool
	xml      bool
	list     bool

	// Words appended to the built-in contraction sets.
	beganUnambiguous []string
	endedUnambiguous []string
	beganAmbiguous   []string
	endedAmbiguous   []string
}

func main() {
	gtrace.CoreTracer = gologadapter.New()

	s := &settings{}
	root := &cobra.Command{
		Use:           "keenquotes",
		Short:         "convert straight quotes to curly quotes and primes",
		Long:          "Reads prose from stdin and writes it to stdout with straight quotation marks converted to opening/closing quotes, apostrophes and primes. Marks that cannot be disambiguated pass through unchanged.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.InOrStdin(), s)
		},
	}
	addFlags(root.Flags(), s)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "keenquotes:", err)
		os.Exit(1)
	}
}

func addFlags(fs *pflag.FlagSet, s *settings) {
	fs.BoolVarP(&s.entities, "entities", "e", false, "replace quotes with HTML entities instead of Unicode glyphs")
	fs.BoolVarP(&s.xml, "xml", "x", false, "skip XML tags and preformatted elements while scanning")
	fs.BoolVarP(&s.list, "list", "l", false, "list the contraction sets and exit")
	fs.BoolP("version", "V", false, "print the version and exit")
	fs.StringArrayVar(&s.beganUnambiguous, "ub", nil, "append word to the unambiguous-began contractions (repeatable)")
	fs.StringArrayVar(&s.endedUnambiguous, "ue", nil, "append word to the unambiguous-ended contractions (repeatable)")
	fs.StringArrayVar(&s.beganAmbiguous, "ab", nil, "append word to the ambiguous-began contractions (repeatable)")
	fs.StringArrayVar(&s.endedAmbiguous, "ae", nil, "append word to the ambiguous-ended contractions (repeatable)")
}

func run(out io.Writer, in io.Reader, s *settings) error {
	c := parser.NewContractions(wordLists(s))

	if s.list {
		return list(out, c)
	}

	noteLocale()

	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	mode := parser.Glyphs
	if s.entities {
		mode = parser.Entities
	}
	filter := lex.FilterPlain
	if s.xml {
		filter = lex.FilterXML
	}

	_, err = io.WriteString(out, keenquotes.Curl(string(text), c, mode, filter))
	return err
}

// wordLists merges the flag appends into the built-in defaults. The
// library replaces a category wholesale; the command appends.
func wordLists(s *settings) parser.WordLists {
	lists := parser.DefaultWordLists()
	lists.BeganUnambiguous = append(lists.BeganUnambiguous, s.beganUnambiguous...)
	lists.EndedUnambiguous = append(lists.EndedUnambiguous, s.endedUnambiguous...)
	lists.BeganAmbiguous = append(lists.BeganAmbiguous, s.beganAmbiguous...)
	lists.EndedAmbiguous = append(lists.EndedAmbiguous, s.endedAmbiguous...)
	return lists
}

func list(out io.Writer, c *parser.Contractions) error {
	lists := c.Lists()
	sections := []struct {
		title string
		words []string
	}{
		{"began unambiguously", lists.BeganUnambiguous},
		{"began ambiguously", lists.BeganAmbiguous},
		{"ended unambiguously", lists.EndedUnambiguous},
		{"ended ambiguously", lists.EndedAmbiguous},
	}
	for _, sec := range sections {
		if _, err := fmt.Fprintf(out, "# %s\n", sec.title); err != nil {
			return err
		}
		for _, w := range sec.words {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return err
			}
		}
	}
	return nil
}

// noteLocale points out that the contraction sets are English when the
// user's locale says otherwise.
func noteLocale() {
	loc, err := jj.DetectIETF()
	if err != nil {
		return
	}
	tag := language.Make(loc)
	if base, _ := tag.Base(); base.String() != "en" {
		gtrace.CoreTracer.Infof("detected locale %s; contraction sets are English only", loc)
	}
}
