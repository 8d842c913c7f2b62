package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/konbassmio/gearbox/sizing"
	"github.com/konbassmio/gearbox/train"
)

// prompter reads one whitespace-trimmed answer per question. Malformed or
// missing answers are fatal input errors: the engine never runs on them.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// answer prints the question and returns the next line, trimmed.
func (p *prompter) answer(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("input: %w", err)
		}

		return "", fmt.Errorf("input: no answer for %q", question)
	}

	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) intAnswer(question string) (int, error) {
	s, err := p.answer(question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("input: %q is not an integer", s)
	}

	return v, nil
}

func (p *prompter) floatAnswer(question string) (float64, error) {
	s, err := p.answer(question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("input: %q is not a number", s)
	}

	return v, nil
}

// promptDesignConfig mirrors the classic interactive flow: ten questions,
// any parse failure aborts before the search starts.
func promptDesignConfig(r io.Reader, w io.Writer) (train.Config, error) {
	p := newPrompter(r, w)

	var (
		cfg train.Config
		pct float64
		err error
	)
	if cfg.MaxSolutions, err = p.intAnswer("maximum number of designs"); err != nil {
		return train.Config{}, err
	}
	if cfg.TargetRatio, err = p.floatAnswer("target overall ratio (e.g. 18.0)"); err != nil {
		return train.Config{}, err
	}
	if pct, err = p.floatAnswer("tolerance, percent (e.g. 5)"); err != nil {
		return train.Config{}, err
	}
	cfg.Tolerance = pct / 100
	if cfg.MinStages, err = p.intAnswer("minimum stage count"); err != nil {
		return train.Config{}, err
	}
	if cfg.MaxStages, err = p.intAnswer("maximum stage count"); err != nil {
		return train.Config{}, err
	}
	if cfg.ZMin, err = p.intAnswer("minimum teeth count"); err != nil {
		return train.Config{}, err
	}
	if cfg.ZMax, err = p.intAnswer("maximum teeth count"); err != nil {
		return train.Config{}, err
	}
	if cfg.InputTorqueNm, err = p.floatAnswer("input torque, N·m"); err != nil {
		return train.Config{}, err
	}
	if cfg.ShearMPa, err = p.floatAnswer("material shear strength τ, MPa"); err != nil {
		return train.Config{}, err
	}
	if cfg.TensileMPa, err = p.floatAnswer("material tensile strength σ, MPa"); err != nil {
		return train.Config{}, err
	}

	return cfg, nil
}

// promptModuleParams is the interactive flow of the sizing utility.
// Torque is asked in N·m and converted to N·mm for the strength formula.
func promptModuleParams(r io.Reader, w io.Writer) (sizing.Params, error) {
	p := newPrompter(r, w)

	var (
		params sizing.Params
		nm     float64
		err    error
	)
	if nm, err = p.floatAnswer("torque, N·m"); err != nil {
		return sizing.Params{}, err
	}
	params.Torque = nm * 1000
	if params.Tau, err = p.floatAnswer("material shear strength τ, MPa"); err != nil {
		return sizing.Params{}, err
	}
	if params.Sigma, err = p.floatAnswer("material tensile strength σ, MPa"); err != nil {
		return sizing.Params{}, err
	}
	if params.MinModule, err = p.floatAnswer("smallest candidate module, mm"); err != nil {
		return sizing.Params{}, err
	}
	if params.MaxModule, err = p.floatAnswer("largest candidate module, mm"); err != nil {
		return sizing.Params{}, err
	}
	if params.Step, err = p.floatAnswer("candidate step, mm"); err != nil {
		return sizing.Params{}, err
	}

	return params, nil
}
