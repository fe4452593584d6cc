package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

type lustModule struct {
	Package string `yaml:"Package"`
	Entry   string `yaml:"Entry"`
}

func lexFile(path string) ([]rune, []Token, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	raw := []rune(string(data))
	tokens, err := NewLexer(raw).Lex()
	if err != nil {
		return nil, nil, err
	}

	return raw, tokens, nil
}

func parseFile(path string) (AST, error) {
	raw, tokens, err := lexFile(path)
	if err != nil {
		return nil, err
	}

	return NewParser(raw, tokens).Parse()
}

// entryFile resolves the file to operate on: the first CLI argument, or
// the Entry field of lust.yaml when no argument is given.
func entryFile(c *cli.Context) (string, error) {
	if path := c.Args().First(); path != "" {
		return path, nil
	}

	data, err := ioutil.ReadFile("lust.yaml")
	if err != nil {
		return "", fmt.Errorf("no file given and no lust.yaml present: %w", err)
	}

	var doc lustModule
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("error reading lust.yaml: %w", err)
	}
	if doc.Entry == "" {
		return "", fmt.Errorf("lust.yaml has no Entry field")
	}

	return doc.Entry, nil
}

func main() {
	app := &cli.App{
		Name:  "lust",
		Usage: "lust language frontend",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				log.Fatalf("error with lust: %s", err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "init a lust module in this directory",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						fmt.Printf("no module name provided")
						os.Exit(1)
					}

					yml := lustModule{
						Package: name,
						Entry:   name + ".lust",
					}

					fi, err := os.Create("lust.yaml")
					if err != nil {
						fmt.Printf("error creating lust.yaml: %s", err)
						os.Exit(1)
					}
					defer fi.Close()

					out, err := yaml.Marshal(yml)
					if err != nil {
						fmt.Printf("error creating lust.yaml: %s", err)
						os.Exit(1)
					}

					_, err = fi.Write(out)
					if err != nil {
						fmt.Printf("error creating lust.yaml: %s", err)
						os.Exit(1)
					}

					return nil
				},
			},
			{
				Name:  "tokens",
				Usage: "dump the token sequence of a file",
				Action: func(c *cli.Context) error {
					file, err := entryFile(c)
					if err != nil {
						return err
					}

					_, tokens, err := lexFile(file)
					if err != nil {
						tracerr.PrintSourceColor(tracerr.Wrap(err))
						os.Exit(1)
					}

					repr.Println(tokens)
					return nil
				},
			},
			{
				Name:  "ast",
				Usage: "parse a file and dump its syntax tree",
				Action: func(c *cli.Context) error {
					file, err := entryFile(c)
					if err != nil {
						return err
					}

					ast, err := parseFile(file)
					if err != nil {
						tracerr.PrintSourceColor(tracerr.Wrap(err))
						os.Exit(1)
					}

					repr.Println(ast)
					return nil
				},
			},
			{
				Name:  "fmt",
				Usage: "parse a file and print its canonical rendering",
				Action: func(c *cli.Context) error {
					file, err := entryFile(c)
					if err != nil {
						return err
					}

					ast, err := parseFile(file)
					if err != nil {
						tracerr.PrintSourceColor(tracerr.Wrap(err))
						os.Exit(1)
					}

					fmt.Println(ast.String())
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
