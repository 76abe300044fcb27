package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/fetch"
	"github.com/jonathan/social-poster/internal/pipeline"
	"github.com/jonathan/social-poster/internal/prompts"
	"github.com/jonathan/social-poster/internal/schemas"
	"github.com/jonathan/social-poster/internal/textgen"
	"github.com/jonathan/social-poster/internal/types"
)

func stringArg(req mcp.CallToolRequest, name string) string {
	if v, ok := req.Params.Arguments[name].(string); ok {
		return v
	}
	return ""
}

func stringSliceArg(req mcp.CallToolRequest, name string) []string {
	raw, ok := req.Params.Arguments[name].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) handleGetBrandList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list brand profiles: %v", err)), nil
	}
	if names == nil {
		names = []string{}
	}
	return jsonResult(names)
}

func (s *Server) handleGetBrandProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brandName := stringArg(req, "brand_name")
	if brandName == "" {
		return mcp.NewToolResultError("brand_name is required"), nil
	}

	profile, err := s.store.Get(ctx, brandName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load brand profile: %v", err)), nil
	}
	if profile == nil {
		return mcp.NewToolResultError(fmt.Sprintf("brand profile not found: %s", brandName)), nil
	}
	return jsonResult(profile)
}

func (s *Server) handleCreateBrandProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brandName := stringArg(req, "brand_name")
	if brandName == "" {
		return mcp.NewToolResultError("brand_name is required"), nil
	}

	profile, err := s.drafter.Draft(ctx, brandName, stringArg(req, "homepage_url"), stringArg(req, "description"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to draft brand profile: %v", err)), nil
	}
	return jsonResult(profile)
}

func (s *Server) handleSaveBrandProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := stringArg(req, "profile")
	if document == "" {
		return mcp.NewToolResultError("profile is required"), nil
	}

	if err := schemas.ValidateBrandProfile([]byte(document)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile does not match schema: %v", err)), nil
	}

	var profile types.BrandProfile
	if err := json.Unmarshal([]byte(document), &profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode profile: %v", err)), nil
	}
	if err := brand.ValidateProfile(&profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid profile: %v", err)), nil
	}

	if err := s.store.Set(ctx, profile.BrandName, &profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save profile: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Brand profile saved: %s", profile.BrandName)), nil
}

// creatorFor builds a per-brand content pipeline.
func (s *Server) creatorFor(profile *types.BrandProfile) *pipeline.Creator {
	manager := brand.NewManager(profile)
	generator := textgen.NewGenerator(s.client, manager)
	return pipeline.NewCreator(manager, generator, s.image, s.moderator)
}

func (s *Server) handleDraftPostContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brandName := stringArg(req, "brand_name")
	if brandName == "" {
		return mcp.NewToolResultError("brand_name is required"), nil
	}
	platformName := stringArg(req, "platform")
	if platformName == "" {
		return mcp.NewToolResultError("platform is required"), nil
	}

	profile, err := s.store.Get(ctx, brandName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load brand profile: %v", err)), nil
	}
	if profile == nil {
		return mcp.NewToolResultError(fmt.Sprintf("brand profile not found: %s", brandName)), nil
	}

	urls := stringSliceArg(req, "urls")
	userRequest := stringArg(req, "user_request")
	if len(urls) == 0 && userRequest == "" {
		return mcp.NewToolResultError("at least one of urls and user_request is required"), nil
	}

	// Every source URL must load; posting from partial material would
	// silently change what the post is about.
	var sections []string
	for _, u := range urls {
		text, err := s.fetcher.Fetch(ctx, u)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to fetch %s: %v", u, err)), nil
		}
		sections = append(sections, text)
	}
	if userRequest != "" {
		sections = append(sections, userRequest)
	}
	if language := stringArg(req, "language"); language != "" {
		sections = append(sections, prompts.LanguagePin(language))
	}

	trend := types.TrendContent{Content: strings.Join(sections, "\n\n")}
	if len(urls) > 0 {
		trend.Source = fetch.SourceName(urls[0])
	} else {
		trend.Source = "user_request"
	}

	post, err := s.creatorFor(profile).GenerateContent(ctx, platformName, trend)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate post: %v", err)), nil
	}
	return jsonResult(post)
}

func (s *Server) handleCheckLinkedInLoggedIn(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.publisher == nil {
		return mcp.NewToolResultError("publishing is not configured"), nil
	}
	status, err := s.publisher.CheckLoggedIn(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to check login: %v", err)), nil
	}
	return jsonResult(status)
}

func (s *Server) handleCreateLinkedInPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.publisher == nil {
		return mcp.NewToolResultError("publishing is not configured"), nil
	}
	text := stringArg(req, "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	result, err := s.publisher.Publish(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to publish: %v", err)), nil
	}
	return jsonResult(result)
}
