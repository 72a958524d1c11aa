// Package raidtools fetches the game catalog from the raidtools.dev JSON API.
package raidtools

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/mklnz/stashkeep/internal/utils"
	"github.com/mklnz/stashkeep/pkg/catalog"
	"github.com/mklnz/stashkeep/pkg/whttp"
)

const baseURL = "https://api.raidtools.dev/v1"

type Provider struct {
	client *retryablehttp.Client
	token  string
}

// New returns a provider. The API works unauthenticated at a lower rate
// limit; a token from the config raises it.
func New(token string) *Provider {
	return &Provider{client: whttp.DefaultClient(), token: token}
}

func (p *Provider) Name() string { return "raidtools" }

func (p *Provider) FetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{Source: p.Name(), FetchedAt: time.Now().UTC()}

	endpoints := []struct {
		path  string
		parse func(body string, cat *catalog.Catalog)
	}{
		{"/items", p.parseItems},
		{"/quests", p.parseQuests},
		{"/hideout/modules", p.parseModules},
		{"/projects", p.parseProjects},
	}

	for _, ep := range endpoints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := p.get(baseURL + ep.path)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", ep.path, err)
		}
		ep.parse(body, cat)
	}

	utils.Log.Debugf("raidtools: fetched %d items, %d quests, %d modules, %d projects",
		len(cat.Items), len(cat.Quests), len(cat.Modules), len(cat.Projects))
	return cat, nil
}

func (p *Provider) get(url string) (string, error) {
	req := &whttp.Request{URL: url}
	if p.token != "" {
		req.Headers = append(req.Headers, whttp.Header{Name: "Authorization", Value: "Bearer " + p.token})
	}
	res, err := whttp.Send(req, p.client)
	if err != nil {
		return "", err
	}
	if res.StatusCode == 401 {
		return "", fmt.Errorf("invalid raidtools API token")
	}
	if res.StatusCode != 200 {
		return "", fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return res.BodyString, nil
}

func (p *Provider) parseItems(body string, cat *catalog.Catalog) {
	gjson.Get(body, "data").ForEach(func(_, item gjson.Result) bool {
		cat.Items = append(cat.Items, catalog.Item{
			ID:       item.Get("slug").String(),
			Name:     item.Get("name").String(),
			Category: item.Get("category").String(),
			Value:    item.Get("sell_value").Float(),
			Weight:   item.Get("weight").Float(),
		})
		return true
	})
}

func (p *Provider) parseQuests(body string, cat *catalog.Catalog) {
	gjson.Get(body, "data").ForEach(func(_, q gjson.Result) bool {
		quest := catalog.Quest{
			ID:   q.Get("slug").String(),
			Name: q.Get("name").String(),
		}
		q.Get("required_items").ForEach(func(_, entry gjson.Result) bool {
			quest.RequiredItems = append(quest.RequiredItems, catalog.RequirementEntry{
				ItemID:   entry.Get("item_slug").String(),
				Quantity: int(entry.Get("quantity").Int()),
			})
			return true
		})
		cat.Quests = append(cat.Quests, quest)
		return true
	})
}

func (p *Provider) parseModules(body string, cat *catalog.Catalog) {
	gjson.Get(body, "data").ForEach(func(_, m gjson.Result) bool {
		module := catalog.HideoutModule{
			ID:   m.Get("slug").String(),
			Name: m.Get("name").String(),
		}
		m.Get("levels").ForEach(func(_, l gjson.Result) bool {
			level := catalog.HideoutLevel{Level: int(l.Get("level").Int())}
			l.Get("required_items").ForEach(func(_, entry gjson.Result) bool {
				level.RequiredItems = append(level.RequiredItems, catalog.RequirementEntry{
					ItemID:   entry.Get("item_slug").String(),
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

func (p *Provider) parseProjects(body string, cat *catalog.Catalog) {
	gjson.Get(body, "data").ForEach(func(_, pr gjson.Result) bool {
		project := catalog.Project{
			ID:   pr.Get("slug").String(),
			Name: pr.Get("name").String(),
		}
		pr.Get("phases").ForEach(func(_, ph gjson.Result) bool {
			phase := catalog.ProjectPhase{Phase: int(ph.Get("phase").Int())}
			ph.Get("required_items").ForEach(func(_, entry gjson.Result) bool {
				phase.RequiredItems = append(phase.RequiredItems, catalog.RequirementEntry{
					ItemID:   entry.Get("item_slug").String(),
					Quantity: int(entry.Get("quantity").Int()),
				})
				return true
			})
			ph.Get("value_requirements").ForEach(func(category, target gjson.Result) bool {
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
