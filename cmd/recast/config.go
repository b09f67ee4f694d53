package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// options is the resolved set of conversion settings after the config
// file and flags have been merged.
type options struct {
	template  string
	fonts     []string
	password  string
	startPage int
	endPage   int
	pages     []int
	verbose   bool
}

// fileConfig mirrors the command-line flags in YAML form. StartPage and
// EndPage are pointers so an absent key can be told apart from zero.
type fileConfig struct {
	Template  string   `yaml:"template"`
	Fonts     []string `yaml:"fonts"`
	Password  string   `yaml:"password"`
	StartPage *int     `yaml:"start_page"`
	EndPage   *int     `yaml:"end_page"`
	Pages     []int    `yaml:"pages"`
	Verbose   bool     `yaml:"verbose"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// mergeOptions starts from the config file values and applies every flag
// the user set explicitly. set holds the names of flags seen on the
// command line.
func mergeOptions(file fileConfig, flags options, set map[string]bool) options {
	out := options{
		template: file.Template,
		fonts:    file.Fonts,
		password: file.Password,
		endPage:  -1,
		pages:    file.Pages,
		verbose:  file.Verbose,
	}
	if file.StartPage != nil {
		out.startPage = *file.StartPage
	}
	if file.EndPage != nil {
		out.endPage = *file.EndPage
	}

	if set["template"] {
		out.template = flags.template
	}
	if set["fonts"] {
		out.fonts = flags.fonts
	}
	if set["password"] {
		out.password = flags.password
	}
	if set["start-page"] {
		out.startPage = flags.startPage
	}
	if set["end-page"] {
		out.endPage = flags.endPage
	}
	if set["pages"] {
		out.pages = flags.pages
	}
	if set["verbose"] {
		out.verbose = flags.verbose
	}
	return out
}

// parsePageList parses a comma-separated list of 0-indexed page numbers.
// An empty string yields no pages.
func parsePageList(s string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
