package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/saad17g/calc"
)

func main() {
	app := &cli.App{
		Name:      "calc",
		Usage:     "evaluate an arithmetic expression",
		ArgsUsage: "expression",
		Description: "calc evaluates the expression given by its arguments, or each line of\n" +
			"standard input when no arguments are given. Integer subexpressions stay\n" +
			"integers; division and the mathematical functions produce floats.\n\n" +
			"Functions: " + strings.Join(calc.Funcs(), ", ") + ". Trigonometry is in radians.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print the parse tree before the result",
			},
			&cli.StringFlag{
				Name:  "in",
				Usage: "read expressions line by line from `FILE` instead of stdin",
			},
		},
		Action: run,
	}
	app.RunAndExitOnError()
}

func run(c *cli.Context) error {
	if c.NArg() > 0 {
		return eval(strings.Join(c.Args().Slice(), " "), c.Bool("echo"))
	}
	in := os.Stdin
	if name := c.String("in"); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()
		in = f
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := eval(line, c.Bool("echo")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func eval(src string, echo bool) error {
	a, err := calc.ParseString(src)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	v, err := a.Eval()
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Println(v)
	return nil
}
