package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	TodayURI        = "apod://today"
	RecentURI       = "apod://recent"
	DateURIPrefix   = "apod://date/"
	dateURITemplate = DateURIPrefix + "{date}"
	jsonMIME        = "application/json"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	srv.AddResource(
		mcp.NewResource(TodayURI, "Today's APOD",
			mcp.WithResourceDescription("The current Astronomy Picture of the Day."),
			mcp.WithMIMEType(jsonMIME),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			p, err := svc.Today(ctx)
			if err != nil {
				return nil, err
			}
			return jsonContents(req.Params.URI, p)
		},
	)

	srv.AddResource(
		mcp.NewResource(RecentURI, "Recent APOD Gallery",
			mcp.WithResourceDescription("Pictures for the configured recent window, in backend order."),
			mcp.WithMIMEType(jsonMIME),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			res, err := svc.Recent(ctx, 0)
			if err != nil {
				return nil, err
			}
			return jsonContents(req.Params.URI, res)
		},
	)

	srv.AddResourceTemplate(
		mcp.NewResourceTemplate(dateURITemplate, "APOD by date",
			mcp.WithTemplateDescription("The picture for one YYYY-MM-DD date."),
			mcp.WithTemplateMIMEType(jsonMIME),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			p, err := svc.ByDate(ctx, dateFromURI(req))
			if err != nil {
				return nil, err
			}
			return jsonContents(req.Params.URI, p)
		},
	)
}

// dateFromURI prefers the template argument and falls back to the URI tail.
func dateFromURI(req mcp.ReadResourceRequest) string {
	switch v := req.Params.Arguments["date"].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(req.Params.URI, DateURIPrefix)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: jsonMIME, Text: string(data)},
	}, nil
}
