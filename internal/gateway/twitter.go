package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"

	"github.com/snapshot-reflect/reflectbot/internal/model"
)

const listBatchSize = 100

// TwitterConfig holds the OAuth1 credentials for the Twitter gateway.
type TwitterConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// TwitterGateway implements Gateway and MediaFetcher over the Twitter API.
type TwitterGateway struct {
	client     *twitter.Client
	httpClient *http.Client
}

// NewTwitterGateway builds an OAuth1-authenticated Twitter gateway.
func NewTwitterGateway(cfg TwitterConfig) (*TwitterGateway, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" || cfg.AccessToken == "" || cfg.AccessSecret == "" {
		return nil, fmt.Errorf("gateway: all four Twitter credentials are required")
	}
	config := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterGateway{
		client:     twitter.NewClient(httpClient),
		httpClient: httpClient,
	}, nil
}

// ListMentions returns mentions newer than sinceID, oldest-first.
func (g *TwitterGateway) ListMentions(ctx context.Context, sinceID int64) ([]model.InboundEvent, error) {
	tweets, _, err := g.client.Timelines.MentionTimeline(&twitter.MentionTimelineParams{
		SinceID:   sinceID,
		Count:     listBatchSize,
		TweetMode: "extended",
	})
	if err != nil {
		return nil, fmt.Errorf("gateway: list mentions: %w", err)
	}

	// The API returns newest-first.
	events := make([]model.InboundEvent, 0, len(tweets))
	for i := len(tweets) - 1; i >= 0; i-- {
		events = append(events, mentionEvent(&tweets[i]))
	}
	return events, nil
}

func mentionEvent(tw *twitter.Tweet) model.InboundEvent {
	ev := model.InboundEvent{
		ID:        tw.ID,
		Channel:   model.ChannelMention,
		Text:      CleanText(tw.FullText),
		InReplyTo: tw.InReplyToStatusID,
	}
	if ev.Text == "" {
		ev.Text = CleanText(tw.Text)
	}
	if tw.User != nil {
		ev.SenderID = tw.User.IDStr
		ev.ScreenName = tw.User.ScreenName
	}
	if tw.Entities != nil && len(tw.Entities.Media) > 0 {
		ev.ImageURL = tw.Entities.Media[0].MediaURLHttps
	}
	return ev
}

// ListDirectMessages returns DM events newer than sinceID, oldest-first.
func (g *TwitterGateway) ListDirectMessages(ctx context.Context, sinceID int64) ([]model.InboundEvent, error) {
	resp, _, err := g.client.DirectMessages.EventsList(&twitter.DirectMessageEventsListParams{
		Count: listBatchSize,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway: list direct messages: %w", err)
	}

	var events []model.InboundEvent
	// Events arrive newest-first; reverse and drop everything at or
	// below the watermark.
	for i := len(resp.Events) - 1; i >= 0; i-- {
		ev, ok := directEvent(&resp.Events[i])
		if !ok || ev.ID <= sinceID {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func directEvent(dm *twitter.DirectMessageEvent) (model.InboundEvent, bool) {
	id, err := strconv.ParseInt(dm.ID, 10, 64)
	if err != nil || dm.Message == nil || dm.Message.Data == nil {
		return model.InboundEvent{}, false
	}
	ev := model.InboundEvent{
		ID:       id,
		Channel:  model.ChannelDirect,
		SenderID: dm.Message.SenderID,
		Text:     CleanText(dm.Message.Data.Text),
	}
	if att := dm.Message.Data.Attachment; att != nil {
		ev.ImageURL = att.Media.MediaURLHttps
	}
	return ev, true
}

// Reply posts a threaded reply, prefixed with the author's handle so the
// platform links it into the thread.
func (g *TwitterGateway) Reply(ctx context.Context, inReplyTo int64, screenName, text string) (int64, error) {
	status := text
	if screenName != "" {
		status = "@" + screenName + " " + text
	}
	tw, _, err := g.client.Statuses.Update(status, &twitter.StatusUpdateParams{
		InReplyToStatusID: inReplyTo,
	})
	if err != nil {
		return 0, fmt.Errorf("gateway: post reply: %w", err)
	}
	return tw.ID, nil
}

// SendDirectMessage sends a DM to the recipient.
func (g *TwitterGateway) SendDirectMessage(ctx context.Context, recipientID, text string) (int64, error) {
	resp, _, err := g.client.DirectMessages.EventsNew(&twitter.DirectMessageEventsNewParams{
		Event: &twitter.DirectMessageEvent{
			Type: "message_create",
			Message: &twitter.DirectMessageEventMessage{
				Target: &twitter.DirectMessageTarget{RecipientID: recipientID},
				Data:   &twitter.DirectMessageData{Text: text},
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("gateway: send direct message: %w", err)
	}
	id, err := strconv.ParseInt(resp.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("gateway: parse outbound dm id %q: %w", resp.ID, err)
	}
	return id, nil
}

// FetchMedia downloads an attachment with the gateway's signed session.
// DM media is only served to authenticated requests.
func (g *TwitterGateway) FetchMedia(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: build media request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: fetch media: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway: fetch media: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read media: %w", err)
	}
	return data, nil
}
