package main

import (
	"fmt"
	"strconv"
	"strings"
)

// formulaList collects repeated -formula flags.
type formulaList []string

func (l *formulaList) String() string { return strings.Join(*l, "; ") }

func (l *formulaList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// pointFlag parses "x,y" into a pair of floats.
type pointFlag struct {
	X, Y  float64
	valid bool
}

func (p *pointFlag) String() string {
	if !p.valid {
		return ""
	}
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

func (p *pointFlag) Set(v string) error {
	x, y, ok := strings.Cut(v, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", v)
	}
	var err error
	if p.X, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
		return err
	}
	if p.Y, err = strconv.ParseFloat(strings.TrimSpace(y), 64); err != nil {
		return err
	}
	p.valid = true
	return nil
}
