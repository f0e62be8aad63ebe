package render

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Fetcher retrieves shader source text. Fetches are asynchronous with
// respect to the host event loop in the sense that they honor the
// context; the preprocessor awaits each fetch before substituting its
// result, since the fetched text may itself contain further includes.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches shader sources over HTTP(S).
type HTTPFetcher struct {
	// Client to use for requests. Defaults to http.DefaultClient.
	Client *http.Client
}

// FetchText performs a GET and returns the response body as text.
func (f *HTTPFetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FSFetcher fetches shader sources from a file system, typically an
// embed.FS holding the shader tree.
type FSFetcher struct {
	FS fs.FS
}

// FetchText reads the named file from the file system.
func (f FSFetcher) FetchText(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := fs.ReadFile(f.FS, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var (
	includeRe  = regexp.MustCompile(`^\s*#include\s+"([^"]*)"`)
	hasExtRe   = regexp.MustCompile(`HAS_EXTENSION\(\s*([A-Za-z0-9_]+)\s*\)`)
	includeTag = "#include"
)

// Preprocessor resolves #include directives and HAS_EXTENSION macros
// in shader sources before compilation. Nothing is cached: every
// Process call re-resolves the full include tree, so edited sources
// take effect on the next program build.
type Preprocessor struct {
	fetcher    Fetcher
	extensions map[string]bool
}

// PreprocessorOption configures a Preprocessor.
type PreprocessorOption func(*Preprocessor)

// WithExtensions declares the extension names the driver supports.
// HAS_EXTENSION(name) macros rewrite to 1 for declared names and 0
// otherwise. Typically fed from Driver.Extensions().
func WithExtensions(names ...string) PreprocessorOption {
	return func(pp *Preprocessor) {
		for _, n := range names {
			pp.extensions[n] = true
		}
	}
}

// NewPreprocessor creates a preprocessor that loads included sources
// through fetcher.
func NewPreprocessor(fetcher Fetcher, opts ...PreprocessorOption) *Preprocessor {
	pp := &Preprocessor{
		fetcher:    fetcher,
		extensions: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(pp)
	}
	return pp
}

// Process fetches the source at url, resolves its include tree, and
// rewrites extension macros. Include paths are resolved relative to
// the including file's directory. A directed include cycle fails with
// *RecursiveIncludeError; an unfetchable include fails with
// *IncludeLoadError.
func (pp *Preprocessor) Process(ctx context.Context, url string) (string, error) {
	src, err := pp.resolve(ctx, url, nil)
	if err != nil {
		return "", err
	}
	return pp.rewriteExtensions(src), nil
}

// ProcessSource resolves includes in source text already in hand,
// treating it as if it lived at fromURL so relative includes resolve
// against that location.
func (pp *Preprocessor) ProcessSource(ctx context.Context, src, fromURL string) (string, error) {
	out, err := pp.expand(ctx, src, fromURL, []string{fromURL})
	if err != nil {
		return "", err
	}
	return pp.rewriteExtensions(out), nil
}

// resolve fetches url and expands its includes. chain is the set of
// paths currently being resolved on this inclusion chain, in order;
// it is local to one Process call, so concurrent builds do not share
// state.
func (pp *Preprocessor) resolve(ctx context.Context, url string, chain []string) (string, error) {
	for _, p := range chain {
		if p == url {
			return "", &RecursiveIncludeError{Path: url, Chain: append(chain[:len(chain):len(chain)], url)}
		}
	}
	src, err := pp.fetcher.FetchText(ctx, url)
	if err != nil {
		return "", &IncludeLoadError{Path: url, Err: err}
	}
	return pp.expand(ctx, src, url, append(chain, url))
}

// expand substitutes each include directive in src with the resolved
// text of its target. Each nested include completes before its text is
// substituted, since that text may contain further includes.
func (pp *Preprocessor) expand(ctx context.Context, src, from string, chain []string) (string, error) {
	lines := strings.Split(src, "\n")
	var out strings.Builder
	for i, line := range lines {
		m := includeRe.FindStringSubmatch(line)
		if m == nil {
			if strings.HasPrefix(strings.TrimSpace(line), includeTag) {
				slog.Warn("malformed #include directive", "file", from, "line", i+1)
			}
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}
		target := resolveRef(from, m[1])
		text, err := pp.resolve(ctx, target, chain)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

func (pp *Preprocessor) rewriteExtensions(src string) string {
	return hasExtRe.ReplaceAllStringFunc(src, func(m string) string {
		name := hasExtRe.FindStringSubmatch(m)[1]
		if pp.extensions[name] {
			return "1"
		}
		return "0"
	})
}

// resolveRef resolves an include path against the location of the
// including file. Absolute URLs resolve per RFC 3986; bare paths
// (file-system fetchers) resolve with path semantics.
func resolveRef(base, ref string) string {
	bu, err := url.Parse(base)
	if err != nil || bu.Scheme == "" {
		return path.Join(path.Dir(base), ref)
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return path.Join(path.Dir(base), ref)
	}
	return bu.ResolveReference(ru).String()
}
