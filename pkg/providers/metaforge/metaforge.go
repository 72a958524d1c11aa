// Package metaforge fetches the game catalog from the MetaForge community
// site. The site is a Next.js app, so each page embeds its full dataset as
// JSON in a #__NEXT_DATA__ script tag; we pull that out with goquery and walk
// it with gjson instead of depending on their internal API.
package metaforge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/mklnz/stashkeep/internal/utils"
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/whttp"
)

const baseURL = "https://metaforge.gg/arc-raiders"

type Provider struct {
	client *retryablehttp.Client
}

func New() *Provider { return &Provider{client: whttp.DefaultClient()} }

func (p *Provider) Name() string { return "metaforge" }

func (p *Provider) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{Source: p.Name(), FetchedAt: time.Now().UTC()}

	pages := []struct {
		path  string
		parse func(pageProps string, cat *catalog.Catalog)
	}{
		{"/items", parseItems},
		{"/quests", parseQuests},
		{"/hideout", parseHideout},
		{"/projects", parseProjects},
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := p.nextData(baseURL + page.path)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", page.path, err)
		}
		page.parse(data, cat)
	}

	utils.Log.Debugf("metaforge: fetched %d items, %d quests, %d modules, %d projects",
		len(cat.Items), len(cat.Quests), len(cat.Modules), len(cat.Projects))
	return cat, nil
}

// nextData fetches a page and returns the pageProps JSON from its
// #__NEXT_DATA__ script tag.
func (p *Provider) nextData(url string) (string, error) {
	res, err := whttp.Send(&whttp.Request{URL: url}, p.client)
	if err != nil {
		return "", err
	}
	if res.StatusCode != 200 {
		return "", fmt.Errorf("unexpected status %d (%s)", res.StatusCode, res.HTMLTitle)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.BodyString))
	if err != nil {
		return "", err
	}

	raw := doc.Find("#__NEXT_DATA__").First().Text()
	if raw == "" {
		return "", fmt.Errorf("no __NEXT_DATA__ payload at %s", url)
	}
	props := gjson.Get(raw, "props.pageProps")
	if !props.Exists() {
		return "", fmt.Errorf("unexpected __NEXT_DATA__ shape at %s", url)
	}
	return props.Raw, nil
}

func parseItems(pageProps string, cat *catalog.Catalog) {
	gjson.Get(pageProps, "items").ForEach(func(_, item gjson.Result) bool {
		cat.Items = append(cat.Items, catalog.Item{
			ID:       item.Get("id").String(),
			Name:     item.Get("name").String(),
			Category: item.Get("category").String(),
			Value:    item.Get("value").Float(),
			Weight:   item.Get("weight").Float(),
		})
		return true
	})
}

func parseQuests(pageProps string, cat *catalog.Catalog) {
	gjson.Get(pageProps, "quests").ForEach(func(_, q gjson.Result) bool {
		quest := catalog.Quest{
			ID:   q.Get("id").String(),
			Name: q.Get("name").String(),
		}
		q.Get("requiredItemIds").ForEach(func(_, entry gjson.Result) bool {
			quest.RequiredItems = append(quest.RequiredItems, catalog.RequirementEntry{
				ItemID:   entry.Get("itemId").String(),
				Quantity: int(entry.Get("quantity").Int()),
			})
			return true
		})
		cat.Quests = append(cat.Quests, quest)
		return true
	})
}

func parseHideout(pageProps string, cat *catalog.Catalog) {
	gjson.Get(pageProps, "modules").ForEach(func(_, m gjson.Result) bool {
		module := catalog.HideoutModule{
			ID:   m.Get("id").String(),
			Name: m.Get("name").String(),
		}
		m.Get("levels").ForEach(func(_, l gjson.Result) bool {
			level := catalog.HideoutLevel{Level: int(l.Get("level").Int())}
			l.Get("requirements").ForEach(func(_, entry gjson.Result) bool {
				level.RequiredItems = append(level.RequiredItems, catalog.RequirementEntry{
					ItemID:   entry.Get("itemId").String(),
					Quantity: int(entry.Get("quantity").Int()),
				})
				return true
			})
			module.Levels = append(module.Levels, level)
			return true
		})
		cat.Modules = append(cat.Modules, module)
		return true
	})
}

func parseProjects(pageProps string, cat *catalog.Catalog) {
	gjson.Get(pageProps, "projects").ForEach(func(_, pr gjson.Result) bool {
		project := catalog.Project{
			ID:   pr.Get("id").String(),
			Name: pr.Get("name").String(),
		}
		pr.Get("phases").ForEach(func(_, ph gjson.Result) bool {
			phase := catalog.ProjectPhase{Phase: int(ph.Get("phase").Int())}
			ph.Get("requirements").ForEach(func(_, entry gjson.Result) bool {
				phase.RequiredItems = append(phase.RequiredItems, catalog.RequirementEntry{
					ItemID:   entry.Get("itemId").String(),
					Quantity: int(entry.Get("quantity").Int()),
				})
				return true
			})
			// Some phases ask for an aggregate value of a whole item
			// category instead of exact items.
			ph.Get("valueRequirements").ForEach(func(category, target gjson.Result) bool {
				if phase.ValueRequirements == nil {
					phase.ValueRequirements = map[string]int{}
				}
				phase.ValueRequirements[category.String()] = int(target.Int())
				return true
			})
			project.Phases = append(project.Phases, phase)
			return true
		})
		cat.Projects = append(cat.Projects, project)
		return true
	})
}
