package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/social-poster/internal/llm"
	"github.com/jonathan/social-poster/internal/publish"
	"github.com/jonathan/social-poster/internal/store"
)

const profileDocument = `{
	"brand_name": "AstroCalc Pro",
	"voice": {"description": "Educational and enthusiastic", "traits": ["friendly", "accurate"]},
	"content_requirements": ["Focus on educational value"],
	"prohibited_content": ["Political statements"],
	"visual_style": {
		"description": "Deep space theme",
		"colors": ["#1A2980", "#26D0CE"],
		"preferred_imagery": "Scientific illustrations",
		"diagrams": "Clear and well-labeled"
	},
	"product_mentions": {
		"first_mention": "AstroCalc Pro",
		"subsequent_mentions": ["AstroCalc"],
		"emphasis": "One feature per post"
	},
	"platforms": {
		"twitter": {"tone": "casual", "hashtags": ["#Astronomy"], "cta": "visit profile"},
		"instagram": {"tone": "visual", "hashtags": ["#SpaceLovers"], "cta": "download the app"},
		"linkedin": {"tone": "professional", "hashtags": ["#STEM"], "cta": "join the discussion"}
	},
	"product_features": [
		{"name": "Eclipse Tracker", "description": "Predict eclipses", "benefit": "Plan ahead"}
	],
	"target_audience": {"primary": ["Amateur astronomers"], "secondary": ["Students"]}
}`

// fakeClient serves post text from Complete and a fixed profile document from
// CompleteStructured.
type fakeClient struct {
	postText  string
	gotPrompt string
}

func (f *fakeClient) Complete(_ context.Context, _, user string, _ int, _ float32) (string, error) {
	f.gotPrompt = user
	return f.postText, nil
}

func (f *fakeClient) CompleteStructured(context.Context, string, string, llm.SchemaSpec) (json.RawMessage, error) {
	return json.RawMessage(profileDocument), nil
}

func (f *fakeClient) Close() error { return nil }

// fakeFetcher serves canned page text by URL.
type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	text, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no route to %s", url)
	}
	return text, nil
}

// fakePublisher returns scripted login and publish outcomes.
type fakePublisher struct {
	loggedIn bool
	err      error
}

func (f *fakePublisher) CheckLoggedIn(context.Context) (*publish.LoginStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &publish.LoginStatus{IsLoggedIn: f.loggedIn, FullName: "Ada Lovelace"}, nil
}

func (f *fakePublisher) Publish(context.Context, string) (*publish.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.loggedIn {
		return publish.Failure(publish.NotLoggedInMessage), nil
	}
	return publish.Success(publish.PublishedMessage), nil
}

func newTestServer(t *testing.T) (*Server, *fakeClient) {
	t.Helper()
	client := &fakeClient{postText: "Eclipse season is here! #Astronomy"}
	return NewServer(Config{
		Store:  store.NewMemoryStore(),
		Client: client,
		Fetcher: &fakeFetcher{pages: map[string]string{
			"https://example.com/news/eclipse": "A total eclipse crosses the Pacific next month.",
			"https://astrocalc.example.com/":   "AstroCalc Pro predicts eclipses and tracks planets.",
		}},
		Publisher: &fakePublisher{loggedIn: true},
	}), client
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func saveProfile(t *testing.T, s *Server) {
	t.Helper()
	res, err := s.handleSaveBrandProfile(context.Background(), callReq(map[string]any{"profile": profileDocument}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
}

func TestGetBrandList_Empty(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleGetBrandList(context.Background(), callReq(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `[]`, resultText(t, res))
}

func TestSaveAndGetBrandProfile(t *testing.T) {
	s, _ := newTestServer(t)
	saveProfile(t, s)

	res, err := s.handleGetBrandProfile(context.Background(), callReq(map[string]any{"brand_name": "AstroCalc Pro"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	assert.Equal(t, "AstroCalc Pro", decoded["brand_name"])

	res, err = s.handleGetBrandList(context.Background(), callReq(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["AstroCalc Pro"]`, resultText(t, res))
}

func TestGetBrandProfile_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleGetBrandProfile(context.Background(), callReq(map[string]any{"brand_name": "Nobody"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "brand profile not found: Nobody")
}

func TestSaveBrandProfile_RejectsSchemaViolation(t *testing.T) {
	s, _ := newTestServer(t)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(profileDocument), &doc))
	delete(doc, "voice")
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	res, err := s.handleSaveBrandProfile(context.Background(), callReq(map[string]any{"profile": string(mutated)}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "does not match schema")
}

func TestCreateBrandProfile_DraftsAndSaves(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleCreateBrandProfile(context.Background(), callReq(map[string]any{
		"brand_name":   "AstroCalc Pro",
		"homepage_url": "https://astrocalc.example.com/",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	saved, err := s.store.Get(context.Background(), "AstroCalc Pro")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "AstroCalc Pro", saved.BrandName)
}

func TestCreateBrandProfile_DescriptionOnly(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleCreateBrandProfile(context.Background(), callReq(map[string]any{
		"brand_name":  "AstroCalc Pro",
		"description": "An astronomy calculation app",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	saved, err := s.store.Get(context.Background(), "AstroCalc Pro")
	require.NoError(t, err)
	require.NotNil(t, saved)
}

func TestCreateBrandProfile_RequiresBrandName(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleCreateBrandProfile(context.Background(), callReq(map[string]any{
		"description": "nameless",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "brand_name is required")
}

func TestDraftPostContent_GeneratesPost(t *testing.T) {
	s, client := newTestServer(t)
	saveProfile(t, s)

	res, err := s.handleDraftPostContent(context.Background(), callReq(map[string]any{
		"brand_name":   "AstroCalc Pro",
		"platform":     "x",
		"urls":         []any{"https://example.com/news/eclipse"},
		"user_request": "Make it exciting",
		"language":     "Korean",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var post map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &post))
	assert.Equal(t, "twitter", post["platform"])
	assert.Equal(t, "example.com", post["trend_source"])

	assert.Contains(t, client.gotPrompt, "total eclipse crosses the Pacific")
	assert.Contains(t, client.gotPrompt, "Make it exciting")
	assert.Contains(t, client.gotPrompt, "MUST BE in Korean")
}

func TestDraftPostContent_UnknownBrand(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleDraftPostContent(context.Background(), callReq(map[string]any{
		"brand_name":   "Nobody",
		"platform":     "twitter",
		"user_request": "anything",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "brand profile not found")
}

func TestDraftPostContent_FetchFailureIsFatal(t *testing.T) {
	s, _ := newTestServer(t)
	saveProfile(t, s)

	res, err := s.handleDraftPostContent(context.Background(), callReq(map[string]any{
		"brand_name": "AstroCalc Pro",
		"platform":   "twitter",
		"urls":       []any{"https://unreachable.example.com/"},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "failed to fetch https://unreachable.example.com/")
}

func TestDraftPostContent_RequiresMaterial(t *testing.T) {
	s, _ := newTestServer(t)
	saveProfile(t, s)

	res, err := s.handleDraftPostContent(context.Background(), callReq(map[string]any{
		"brand_name": "AstroCalc Pro",
		"platform":   "twitter",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "at least one of urls and user_request")
}

func TestCheckLinkedInLoggedIn(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleCheckLinkedInLoggedIn(context.Background(), callReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, `{"is_logged_in":true,"full_name":"Ada Lovelace"}`, resultText(t, res))
}

func TestCreateLinkedInPost_NotLoggedIn(t *testing.T) {
	s, _ := newTestServer(t)
	s.publisher = &fakePublisher{loggedIn: false}

	res, err := s.handleCreateLinkedInPost(context.Background(), callReq(map[string]any{"text": "Hello network"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, `{"status":"failed","errors":[{"message":"Not logged in to LinkedIn."}]}`, resultText(t, res))
}

func TestCreateLinkedInPost_Success(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleCreateLinkedInPost(context.Background(), callReq(map[string]any{"text": "Hello network"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, `{"status":"success","message":"Post published successfully."}`, resultText(t, res))
}

func TestCreateLinkedInPost_AutomationError(t *testing.T) {
	s, _ := newTestServer(t)
	s.publisher = &fakePublisher{err: errors.New("browser unreachable")}

	res, err := s.handleCreateLinkedInPost(context.Background(), callReq(map[string]any{"text": "Hello"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "browser unreachable")
}

func TestMCPServer_Builds(t *testing.T) {
	s, _ := newTestServer(t)
	assert.NotNil(t, s.MCPServer())
}
