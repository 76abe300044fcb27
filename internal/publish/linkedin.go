package publish

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonathan/social-poster/internal/fetch"
)

const (
	linkedInFeedURL = "https://www.linkedin.com/feed/"

	// LinkedIn feed DOM. These track the current desktop layout and are the
	// first thing to revisit when publishing breaks.
	startPostSelector   = "#ember53"
	editorSelector      = "div.ql-editor"
	postButtonSelector  = "button.share-actions__primary-action"
	profileNameSelector = ".profile-card-name.text-heading-large"

	// NotLoggedInMessage is returned when the browser session has no
	// LinkedIn login.
	NotLoggedInMessage = "Not logged in to LinkedIn."

	// PublishedMessage is returned on successful publishing.
	PublishedMessage = "Post published successfully."
)

// LinkedInPublisher publishes posts through a running browser attached over
// the DevTools protocol, reusing whatever LinkedIn session the browser holds.
type LinkedInPublisher struct {
	browserURL string
	timeout    time.Duration
	verbose    bool
}

// LinkedInOption configures a LinkedInPublisher.
type LinkedInOption func(*LinkedInPublisher)

// WithTimeout overrides the per-operation timeout (60s).
func WithTimeout(d time.Duration) LinkedInOption {
	return func(p *LinkedInPublisher) { p.timeout = d }
}

// WithVerbose enables step logging.
func WithVerbose(v bool) LinkedInOption {
	return func(p *LinkedInPublisher) { p.verbose = v }
}

// NewLinkedInPublisher creates a publisher attached to the browser at
// browserURL. An empty browserURL uses the default local DevTools endpoint.
func NewLinkedInPublisher(browserURL string, opts ...LinkedInOption) *LinkedInPublisher {
	if browserURL == "" {
		browserURL = fetch.DefaultBrowserURL
	}
	p := &LinkedInPublisher{
		browserURL: browserURL,
		timeout:    60 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BrowserURL returns the DevTools endpoint this publisher attaches to.
func (p *LinkedInPublisher) BrowserURL() string {
	return p.browserURL
}

// tab attaches to the remote browser and opens a new tab context.
func (p *LinkedInPublisher) tab(ctx context.Context) (context.Context, context.CancelFunc) {
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, p.browserURL)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, p.timeout)
	return tabCtx, func() {
		timeoutCancel()
		tabCancel()
		allocCancel()
	}
}

// loginRedirected reports whether navigating to the feed bounced to an
// authentication page. LinkedIn redirects logged-out sessions to /login or
// /signup variants.
func loginRedirected(currentURL string) bool {
	return strings.Contains(currentURL, "login") || strings.Contains(currentURL, "signup")
}

// CheckLoggedIn navigates to the LinkedIn feed and reports whether the
// session is authenticated, including the account's display name when it is.
func (p *LinkedInPublisher) CheckLoggedIn(ctx context.Context) (*LoginStatus, error) {
	tabCtx, cancel := p.tab(ctx)
	defer cancel()

	var currentURL string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(linkedInFeedURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.Location(&currentURL),
	)
	if err != nil {
		return nil, &Error{Platform: "linkedin", Stage: "navigation", Cause: err}
	}

	if loginRedirected(currentURL) {
		return &LoginStatus{IsLoggedIn: false}, nil
	}

	// Name lookup is best effort; an authenticated feed without the profile
	// card still counts as logged in.
	var fullName string
	nameCtx, nameCancel := context.WithTimeout(tabCtx, 5*time.Second)
	defer nameCancel()
	if err := chromedp.Run(nameCtx,
		chromedp.Text(profileNameSelector, &fullName, chromedp.ByQuery),
	); err != nil && p.verbose {
		log.Printf("[LINKEDIN] Could not read profile name: %v", err)
	}

	return &LoginStatus{IsLoggedIn: true, FullName: strings.TrimSpace(fullName)}, nil
}

// Publish opens the share box on the LinkedIn feed, types the post text and
// submits it. A logged-out session returns a failed Result, not an error.
func (p *LinkedInPublisher) Publish(ctx context.Context, text string) (*Result, error) {
	tabCtx, cancel := p.tab(ctx)
	defer cancel()

	if p.verbose {
		log.Printf("[LINKEDIN] Publishing %d characters via %s", len(text), p.browserURL)
	}

	var currentURL string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(linkedInFeedURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.Location(&currentURL),
	)
	if err != nil {
		return nil, &Error{Platform: "linkedin", Stage: "navigation", Cause: err}
	}

	if loginRedirected(currentURL) {
		return Failure(NotLoggedInMessage), nil
	}

	err = chromedp.Run(tabCtx,
		chromedp.Click(startPostSelector, chromedp.ByQuery),
		chromedp.WaitVisible(editorSelector, chromedp.ByQuery),
		chromedp.Click(editorSelector, chromedp.ByQuery),
		chromedp.SendKeys(editorSelector, text, chromedp.ByQuery),
	)
	if err != nil {
		return nil, &Error{Platform: "linkedin", Stage: "composition", Cause: err}
	}

	err = chromedp.Run(tabCtx,
		chromedp.Click(postButtonSelector, chromedp.ByQuery),
		// Give the share request time to complete before the tab closes.
		chromedp.Sleep(3*time.Second),
	)
	if err != nil {
		return nil, &Error{Platform: "linkedin", Stage: "submission", Cause: err}
	}

	return Success(PublishedMessage), nil
}

var _ Publisher = (*LinkedInPublisher)(nil)
