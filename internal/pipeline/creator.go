// Package pipeline provides the high-level orchestration for post creation:
// prompt assembly, text generation, moderation, image generation, hashtag
// handling and platform formatting, plus concurrent multi-platform fan-out.
package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/social-poster/internal/brand"
	"github.com/jonathan/social-poster/internal/imagegen"
	"github.com/jonathan/social-poster/internal/moderation"
	"github.com/jonathan/social-poster/internal/platform"
	"github.com/jonathan/social-poster/internal/prompts"
	"github.com/jonathan/social-poster/internal/textgen"
	"github.com/jonathan/social-poster/internal/types"
)

// InstagramImageWarning is attached to Instagram posts assembled without an
// actual image file.
const InstagramImageWarning = "No image provided; Instagram posts require images"

// ModerationWarning is attached to posts whose text was flagged.
const ModerationWarning = "Content flagged by moderation; review before publishing"

// ProgressEvent represents a progress update during post creation.
type ProgressEvent struct {
	Step     string `json:"step"`
	Platform string `json:"platform"`
	Message  string `json:"message"`
}

// ProgressCallback is called as creation steps complete.
type ProgressCallback func(event ProgressEvent)

// Result is the per-platform outcome of a multi-platform run. Exactly one of
// Post and Error is set.
type Result struct {
	Post  *types.GeneratedPost `json:"post,omitempty"`
	Error string               `json:"error,omitempty"`
}

// Creator assembles complete posts from trend content and brand guidelines.
type Creator struct {
	brand      *brand.Manager
	text       *textgen.Generator
	image      *imagegen.Generator
	moderator  moderation.Moderator
	onProgress ProgressCallback
}

// CreatorOption configures a Creator.
type CreatorOption func(*Creator)

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) CreatorOption {
	return func(c *Creator) { c.onProgress = cb }
}

// NewCreator creates a Creator. A nil moderator disables moderation (every
// post passes).
func NewCreator(manager *brand.Manager, text *textgen.Generator, image *imagegen.Generator, moderator moderation.Moderator, opts ...CreatorOption) *Creator {
	if moderator == nil {
		moderator = moderation.Noop{}
	}
	c := &Creator{
		brand:     manager,
		text:      text,
		image:     image,
		moderator: moderator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Creator) report(step, platformName, message string) {
	if c.onProgress != nil {
		c.onProgress(ProgressEvent{Step: step, Platform: platformName, Message: message})
	}
}

// imageAspectRatio returns the generation aspect ratio used per platform.
// LinkedIn renders wide preview cards; everything else gets a square.
func imageAspectRatio(platformName string) string {
	if platformName == platform.LinkedIn {
		return "16:9"
	}
	return "1:1"
}

// GenerateContent creates one complete post for a platform: generated text,
// moderation verdict, optional image, hashtags backfilled from the trend, all
// formatted to the platform's constraints. Unsupported platforms fail before
// any generation work.
func (c *Creator) GenerateContent(ctx context.Context, platformName string, trend types.TrendContent) (*types.GeneratedPost, error) {
	name := platform.Normalize(platformName)
	constraints, err := platform.ConstraintsFor(name)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.BuildPostPrompt(name, trend, c.brand.ProductFeatures())
	if err != nil {
		return nil, err
	}
	c.report("prompt", name, "post prompt assembled")

	text, err := c.text.Generate(ctx, prompt, constraints.MaxLength)
	if err != nil {
		return nil, err
	}
	c.report("text_generation", name, "post text generated")

	passed, err := c.moderator.Check(ctx, text)
	if err != nil {
		return nil, err
	}
	c.report("moderation", name, "moderation checked")

	extracted := platform.ExtractHashtags(text)
	hashtags := platform.BackfillHashtags(name, extracted, trend.Hashtags)

	post := &types.GeneratedPost{
		Platform:         name,
		Text:             text,
		Hashtags:         hashtags,
		Timestamp:        time.Now().Format(time.RFC3339),
		TrendSource:      trend.SourceName(),
		ModerationPassed: passed,
	}
	if !passed {
		post.Warning = ModerationWarning
	}

	if c.image != nil {
		imagePrompt := prompts.BuildImagePrompt(name, trend, c.brand.VisualStyle())
		post.Image = c.image.Generate(ctx, imagegen.Request{
			Prompt:      imagePrompt,
			AspectRatio: imageAspectRatio(name),
			Save:        true,
		})
		c.report("image_generation", name, "image step finished")
	}

	// An imageless Instagram post always carries the no-image notice, even
	// when a moderation warning is already attached.
	if name == platform.Instagram && (post.Image == nil || post.Image.Filename == "") {
		if post.Warning == "" {
			post.Warning = InstagramImageWarning
		} else {
			post.Warning += "; " + InstagramImageWarning
		}
	}

	if err := platform.FormatForPlatform(post, name); err != nil {
		return nil, err
	}
	c.report("formatting", name, "post formatted")

	return post, nil
}

// GenerateMultiPlatform creates posts for several platforms concurrently.
// Each platform gets its own Result; one platform failing does not abort the
// others, but a context cancel stops all of them.
func (c *Creator) GenerateMultiPlatform(ctx context.Context, platforms []string, trend types.TrendContent) map[string]Result {
	results := make(map[string]Result, len(platforms))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range platforms {
		g.Go(func() error {
			key := platform.Normalize(p)
			post, err := c.GenerateContent(gctx, p, trend)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[key] = Result{Error: err.Error()}
			} else {
				results[key] = Result{Post: post}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures land in results

	return results
}
