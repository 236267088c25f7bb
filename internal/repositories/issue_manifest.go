package repositories

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// LoadIssueManifest reads a list of exported issue numbers, one per line.
// Blank lines and lines starting with # are skipped. The result is sorted and
// deduplicated.
func LoadIssueManifest(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	seen := make(map[int]bool)
	var numbers []int

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		number, err := strconv.Atoi(text)
		if err != nil || number < 0 {
			return nil, fmt.Errorf("%s:%d: invalid issue number %q", path, line, text)
		}
		if !seen[number] {
			seen[number] = true
			numbers = append(numbers, number)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Ints(numbers)
	return numbers, nil
}
