package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/ipo"
)

// levelListShape is the accepted literal: "[v1,v2,...,vn]" with n ≥ 2.
var levelListShape = regexp.MustCompile(`^\[(\d+,)+\d+\]$`)

// parseFactorCount parses the first positional argument.
func parseFactorCount(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < ipo.MinParameters || n > ipo.MaxParameters {
		return 0, fmt.Errorf("%w: the first parameter must be an Integer i s.t. %d <= i <= %d indicating the number of factors, got %q",
			ipo.ErrConfiguration, ipo.MinParameters, ipo.MaxParameters, arg)
	}

	return n, nil
}

// parseLevelList parses the second positional argument, a YAML flow
// sequence of level counts, and checks it declares exactly n factors.
func parseLevelList(arg string, n int) ([]int, error) {
	compact := strings.Join(strings.Fields(arg), "")
	bad := fmt.Errorf("%w: the second parameter must be an array of form [val1, val2, ... valn] where each vali indicates "+
		"the number of levels for factor i and n is the number of factors (%d), got %q", ipo.ErrConfiguration, n, arg)
	if !levelListShape.MatchString(compact) {
		return nil, bad
	}

	var levels []int
	if err := yaml.Unmarshal([]byte(compact), &levels); err != nil {
		return nil, bad
	}
	if len(levels) != n {
		return nil, bad
	}

	return levels, nil
}
