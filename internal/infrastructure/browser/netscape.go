package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/mytab/internal/application/port"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/logging"
)

// NetscapeProvider reads a bookmarks.html export (the Netscape bookmark
// format written by every major browser).
type NetscapeProvider struct {
	path string
}

var _ port.BookmarkTreeProvider = (*NetscapeProvider)(nil)

// NewNetscapeProvider creates a provider for the export at path.
func NewNetscapeProvider(path string) *NetscapeProvider {
	return &NetscapeProvider{path: path}
}

// Name identifies the provider.
func (p *NetscapeProvider) Name() string {
	return "html"
}

// GetTree parses the export into a root folder with an empty title.
func (p *NetscapeProvider) GetTree(ctx context.Context) ([]entity.BookmarkNode, error) {
	f, err := os.Open(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoBookmarkFile, p.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmarks export: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks export: %w", err)
	}

	top := doc.Find("dl").First()
	if top.Length() == 0 {
		return nil, fmt.Errorf("failed to parse bookmarks export: no bookmark list in %s", p.path)
	}

	ids := &idSeq{}
	root := &entity.BookmarkFolder{ID: ids.next(), Children: parseList(top, ids)}

	logging.FromContext(ctx).Debug().Str("path", p.path).Int("entries", len(root.Children)).Msg("bookmarks export read")
	return []entity.BookmarkNode{root}, nil
}

type idSeq struct{ n int }

func (s *idSeq) next() string {
	id := strconv.Itoa(s.n)
	s.n++
	return id
}

// parseList converts the DT entries that belong directly to dl.
func parseList(dl *goquery.Selection, ids *idSeq) []entity.BookmarkNode {
	var nodes []entity.BookmarkNode

	dl.Find("dt").FilterFunction(func(_ int, dt *goquery.Selection) bool {
		return dt.Closest("dl").IsSelection(dl)
	}).Each(func(_ int, dt *goquery.Selection) {
		if a := dt.ChildrenFiltered("a").First(); a.Length() > 0 {
			href, _ := a.Attr("href")
			nodes = append(nodes, &entity.BookmarkLink{
				ID:    ids.next(),
				Title: strings.TrimSpace(a.Text()),
				URL:   strings.TrimSpace(href),
			})
			return
		}
		if h3 := dt.ChildrenFiltered("h3").First(); h3.Length() > 0 {
			folder := &entity.BookmarkFolder{ID: ids.next(), Title: strings.TrimSpace(h3.Text())}
			if sub := dt.ChildrenFiltered("dl").First(); sub.Length() > 0 {
				folder.Children = parseList(sub, ids)
			} else if sub := dt.NextFiltered("dd").ChildrenFiltered("dl").First(); sub.Length() > 0 {
				folder.Children = parseList(sub, ids)
			}
			nodes = append(nodes, folder)
		}
	})

	return nodes
}
