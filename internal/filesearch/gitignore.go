package filesearch

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Ignore holds gitignore rules for a tree. The zero value ignores nothing.
type Ignore struct {
	rules []rule
}

type rule struct {
	re      *regexp.Regexp
	negate  bool
	dirOnly bool
	hasDir  bool // pattern contains a slash, so it matches from the root only
}

// LoadIgnore reads root/.gitignore and root/.git/info/exclude. Missing files
// are not an error.
func LoadIgnore(root string) (*Ignore, error) {
	ign := &Ignore{}
	for _, name := range []string{
		filepath.Join(root, ".git", "info", "exclude"),
		filepath.Join(root, ".gitignore"),
	} {
		if err := ign.addFile(name); err != nil {
			return nil, err
		}
	}
	return ign, nil
}

// ParseIgnore builds rules from gitignore-formatted text.
func ParseIgnore(text string) *Ignore {
	ign := &Ignore{}
	for _, line := range strings.Split(text, "\n") {
		ign.add(line)
	}
	return ign
}

func (ign *Ignore) addFile(name string) error {
	file, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	for sc.Scan() {
		ign.add(sc.Text())
	}
	return sc.Err()
}

func (ign *Ignore) add(line string) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" || line[0] == '#' {
		return
	}
	var r rule
	if line[0] == '!' {
		r.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimRight(line, "/")
	}
	if strings.Contains(line, "/") {
		r.hasDir = true
		line = strings.TrimPrefix(line, "/")
	}
	if line == "" {
		return
	}
	re, err := regexp.Compile("^" + globRegexp(line) + "$")
	if err != nil {
		return
	}
	r.re = re
	ign.rules = append(ign.rules, r)
}

// Matches reports whether rel (slash separated, relative to the root) is
// ignored. The last matching rule wins. Files inside an ignored directory are
// ignored too.
func (ign *Ignore) Matches(rel string, isDir bool) bool {
	if ign == nil || len(ign.rules) == 0 {
		return false
	}
	rel = filepath.ToSlash(rel)

	ignored := false
	for _, r := range ign.rules {
		if r.match(rel, isDir) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r rule) match(rel string, isDir bool) bool {
	// Check rel itself, then each parent directory.
	for p, dir := rel, isDir; p != "." && p != "/" && p != ""; p, dir = path.Dir(p), true {
		if r.dirOnly && !dir {
			continue
		}
		candidate := p
		if !r.hasDir {
			candidate = path.Base(p)
		}
		if r.re.MatchString(candidate) {
			return true
		}
	}
	return false
}

// globRegexp translates one gitignore glob into a regular expression body.
func globRegexp(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(glob[i:], "/**"):
			b.WriteString("(?:/.*)?")
			i += 2
		case strings.HasPrefix(glob[i:], "**"):
			b.WriteString(".*")
			i++
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		case c == '[':
			end := strings.IndexByte(glob[i+1:], ']')
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			class := glob[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i += end + 1
		case c == '\\' && i+1 < len(glob):
			i++
			b.WriteString(regexp.QuoteMeta(string(glob[i])))
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}
