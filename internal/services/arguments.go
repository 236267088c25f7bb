package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alimgiray/repostats/pkg/config"
)

// ParseYears parses a comma separated list of calendar years
func ParseYears(value string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil || year < 1 || year > 9999 {
			return nil, fmt.Errorf("%w: invalid year %q", config.ErrInvalidConfig, part)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: at least one year is required", config.ErrInvalidConfig)
	}
	return years, nil
}

// ParseContributors parses a comma separated list of contributor logins
func ParseContributors(value string) ([]string, error) {
	var contributors []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			contributors = append(contributors, part)
		}
	}
	if len(contributors) == 0 {
		return nil, fmt.Errorf("%w: you must specify a contributor", config.ErrInvalidConfig)
	}
	return contributors, nil
}
