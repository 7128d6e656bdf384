package waha

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TextRequest is the body of POST /api/sendText.
type TextRequest struct {
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
	Session string `json:"session"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// Attachment describes the media file of a send request by URL. Mimetype and
// Filename override the gateway's detection when set.
type Attachment struct {
	URL      string `json:"url"`
	Mimetype string `json:"mimetype,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// MediaRequest is the body of the sendImage/sendFile/sendVideo/sendVoice
// endpoints. Convert must be set for video and voice so the gateway
// transcodes into a format WhatsApp accepts.
type MediaRequest struct {
	ChatID  string     `json:"chatId"`
	File    Attachment `json:"file"`
	Session string     `json:"session"`
	Caption string     `json:"caption,omitempty"`
	ReplyTo string     `json:"reply_to,omitempty"`
	Convert bool       `json:"convert,omitempty"`
}

// MediaKind selects the media send endpoint.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaFile  MediaKind = "file"
	MediaVideo MediaKind = "video"
	MediaVoice MediaKind = "voice"
)

var mediaEndpoints = map[MediaKind]string{
	MediaImage: "/api/sendImage",
	MediaFile:  "/api/sendFile",
	MediaVideo: "/api/sendVideo",
	MediaVoice: "/api/sendVoice",
}

// ParseMediaKind validates a media type given on the command line.
func ParseMediaKind(s string) (MediaKind, error) {
	k := MediaKind(s)
	if _, ok := mediaEndpoints[k]; !ok {
		return "", fmt.Errorf("unknown media type %q (want image, file, video or voice)", s)
	}
	return k, nil
}

// NeedsConvert reports whether the gateway must transcode this kind.
func (k MediaKind) NeedsConvert() bool {
	return k == MediaVideo || k == MediaVoice
}

func (c *Client) SendText(ctx context.Context, req TextRequest) (Result, error) {
	return c.post(ctx, "/api/sendText", req)
}

func (c *Client) SendMedia(ctx context.Context, kind MediaKind, req MediaRequest) (Result, error) {
	path, ok := mediaEndpoints[kind]
	if !ok {
		return Result{}, fmt.Errorf("unknown media kind %q", kind)
	}
	return c.post(ctx, path, req)
}

func (c *Client) Groups(ctx context.Context, session string) (Result, error) {
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/groups", nil)
}

func (c *Client) Group(ctx context.Context, session, groupID string) (Result, error) {
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/groups/"+url.PathEscape(groupID), nil)
}

func (c *Client) GroupParticipants(ctx context.Context, session, groupID string) (Result, error) {
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/groups/"+url.PathEscape(groupID)+"/participants", nil)
}

type groupParticipant struct {
	ID string `json:"id"`
}

type createGroupRequest struct {
	Name         string             `json:"name"`
	Participants []groupParticipant `json:"participants"`
}

func (c *Client) CreateGroup(ctx context.Context, session, name string, participantIDs []string) (Result, error) {
	req := createGroupRequest{Name: name}
	for _, id := range participantIDs {
		req.Participants = append(req.Participants, groupParticipant{ID: id})
	}
	return c.post(ctx, "/api/"+url.PathEscape(session)+"/groups", req)
}

func (c *Client) Contacts(ctx context.Context, session string) (Result, error) {
	return c.get(ctx, "/api/contacts/all", url.Values{"session": {session}})
}

func (c *Client) Contact(ctx context.Context, session, contactID string) (Result, error) {
	return c.get(ctx, "/api/contacts", url.Values{
		"session":   {session},
		"contactId": {contactID},
	})
}

func (c *Client) CheckContact(ctx context.Context, session, phone string) (Result, error) {
	return c.get(ctx, "/api/contacts/check-exists", url.Values{
		"session": {session},
		"phone":   {phone},
	})
}

type contactRequest struct {
	Session   string `json:"session"`
	ContactID string `json:"contactId"`
}

func (c *Client) BlockContact(ctx context.Context, session, contactID string) (Result, error) {
	return c.post(ctx, "/api/contacts/block", contactRequest{Session: session, ContactID: contactID})
}

func (c *Client) UnblockContact(ctx context.Context, session, contactID string) (Result, error) {
	return c.post(ctx, "/api/contacts/unblock", contactRequest{Session: session, ContactID: contactID})
}

// Page bounds a single listing request. The gateway sorts; no pagination loop
// happens on this side.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) query() url.Values {
	return url.Values{
		"limit":  {strconv.Itoa(p.Limit)},
		"offset": {strconv.Itoa(p.Offset)},
	}
}

func (c *Client) Chats(ctx context.Context, session string, page Page) (Result, error) {
	q := page.query()
	q.Set("sortBy", "conversationTimestamp")
	q.Set("sortOrder", "desc")
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/chats", q)
}

func (c *Client) ChatsOverview(ctx context.Context, session string, page Page) (Result, error) {
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/chats/overview", page.query())
}

// ChatMessages fetches one page of a chat's history, newest first.
func (c *Client) ChatMessages(ctx context.Context, session, chatID string, page Page, downloadMedia bool) (Result, error) {
	q := page.query()
	q.Set("downloadMedia", strconv.FormatBool(downloadMedia))
	q.Set("sortBy", "timestamp")
	q.Set("sortOrder", "desc")
	return c.get(ctx, "/api/"+url.PathEscape(session)+"/chats/"+url.PathEscape(chatID)+"/messages", q)
}

func (c *Client) Sessions(ctx context.Context) (Result, error) {
	return c.get(ctx, "/api/sessions", nil)
}

func (c *Client) Session(ctx context.Context, name string) (Result, error) {
	return c.get(ctx, "/api/sessions/"+url.PathEscape(name), nil)
}

// SessionAction drives the session lifecycle: start, stop, restart or logout.
func (c *Client) SessionAction(ctx context.Context, name, action string) (Result, error) {
	return c.post(ctx, "/api/sessions/"+url.PathEscape(name)+"/"+url.PathEscape(action), nil)
}
