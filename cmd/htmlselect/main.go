package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boxesandglue/htmlselect"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	var (
		first    bool
		textOnly bool
		attrName string
	)

	rootCmd := &cobra.Command{
		Use:   "htmlselect <selector> [file]",
		Short: "Select elements from an HTML document with a CSS selector",
		Long: `htmlselect parses an HTML document (from a file or stdin), runs the
given CSS selector against it and prints one JSON object per matched
element, in document order.`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			var r io.Reader = os.Stdin
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
				r = f
			}

			doc, err := htmlselect.ParseReader(r)
			if err != nil {
				log.Fatal(err)
			}
			elements, err := doc.Select(args[0])
			if err != nil {
				log.Fatal(err)
			}
			if first && len(elements) > 1 {
				elements = elements[:1]
			}

			for _, el := range elements {
				switch {
				case textOnly:
					fmt.Println(el.Text)
				case attrName != "":
					fmt.Println(el.Get(attrName, ""))
				default:
					out, err := json.Marshal(el.ToMap())
					if err != nil {
						log.Fatal(err)
					}
					fmt.Println(string(out))
				}
			}
		},
	}

	rootCmd.Flags().BoolVar(&first, "first", false, "print only the first match")
	rootCmd.Flags().BoolVar(&textOnly, "text", false, "print normalized text instead of JSON")
	rootCmd.Flags().StringVar(&attrName, "attr", "", "print a single attribute value per match")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
