// Package toolserver exposes the post agent's operations as MCP tools over
// stdio, for use by an agent runtime driving the content workflow.
package toolserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/imagegen"
	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/moderation"
	"github.com/jonathan/social-poster/internal/publish"
	"github.com/jonathan/social-poster/internal/store"
)

const (
	serverName    = "social-poster"
	serverVersion = "1.0.0"
)

// Server wires the agent's components behind the MCP tool surface.
type Server struct {
	store     store.Store
	fetcher   brand.Fetcher
	client    llm.Client
	drafter   *brand.Drafter
	image     *imagegen.Generator
	moderator moderation.Moderator
	publisher publish.Publisher
}

// Config holds the components the tool server operates on.
type Config struct {
	Store     store.Store
	Fetcher   brand.Fetcher
	Client    llm.Client
	Image     *imagegen.Generator
	Moderator moderation.Moderator
	Publisher publish.Publisher
}

// NewServer creates a tool server over the given components.
func NewServer(cfg Config) *Server {
	return &Server{
		store:     cfg.Store,
		fetcher:   cfg.Fetcher,
		client:    cfg.Client,
		drafter:   brand.NewDrafter(cfg.Client, cfg.Store, cfg.Fetcher),
		image:     cfg.Image,
		moderator: cfg.Moderator,
		publisher: cfg.Publisher,
	}
}

// MCPServer builds the MCP server with every tool registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion)

	srv.AddTool(mcp.NewTool("get_brand_list",
		mcp.WithDescription("List the names of all saved brand profiles."),
	), s.handleGetBrandList)

	srv.AddTool(mcp.NewTool("get_brand_profile",
		mcp.WithDescription("Fetch a saved brand profile by name."),
		mcp.WithString("brand_name", mcp.Required(), mcp.Description("Name of the brand")),
	), s.handleGetBrandProfile)

	srv.AddTool(mcp.NewTool("create_brand_profile",
		mcp.WithDescription("Draft a brand profile from the brand's name, homepage, and/or description, and save it."),
		mcp.WithString("brand_name", mcp.Required(), mcp.Description("Name of the brand")),
		mcp.WithString("homepage_url", mcp.Description("Optional URL of the brand's homepage")),
		mcp.WithString("description", mcp.Description("Optional short description of the brand")),
	), s.handleCreateBrandProfile)

	srv.AddTool(mcp.NewTool("save_brand_profile",
		mcp.WithDescription("Validate and save a brand profile given as JSON."),
		mcp.WithString("profile", mcp.Required(), mcp.Description("Brand profile JSON document")),
	), s.handleSaveBrandProfile)

	srv.AddTool(mcp.NewTool("draft_post_content",
		mcp.WithDescription("Generate a platform-ready post from source URLs and a user request, using a saved brand profile."),
		mcp.WithString("brand_name", mcp.Required(), mcp.Description("Name of the brand to post as")),
		mcp.WithString("platform", mcp.Required(), mcp.Description("Target platform: twitter (or x), instagram, linkedin")),
		mcp.WithArray("urls", mcp.Description("Source URLs whose content feeds the post")),
		mcp.WithString("user_request", mcp.Description("Free-form instructions for the post")),
		mcp.WithString("language", mcp.Description("Language the post content must be written in")),
	), s.handleDraftPostContent)

	srv.AddTool(mcp.NewTool("check_linkedin_logged_in",
		mcp.WithDescription("Check whether the attached browser session is logged in to LinkedIn."),
	), s.handleCheckLinkedInLoggedIn)

	srv.AddTool(mcp.NewTool("create_linkedin_post",
		mcp.WithDescription("Publish a text post to LinkedIn through the attached browser session."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Post text to publish")),
	), s.handleCreateLinkedInPost)

	return srv
}

// ServeStdio runs the MCP server over stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCPServer())
}
