package api

import (
	"context"
	"net/url"
)

func (c *Client) GetAnnouncements(ctx context.Context) ([]Announcement, error) {
	req, err := c.newRequest(ctx, "GET", "/avisos", nil, nil)
	if err != nil {
		return nil, err
	}

	var announcements []Announcement
	if err := c.doJSON(req, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) PublishAnnouncement(ctx context.Context, payload AnnouncementRequest) (Announcement, error) {
	req, err := c.newJSONRequest(ctx, "POST", "/avisos", payload)
	if err != nil {
		return Announcement{}, err
	}

	var created Announcement
	if err := c.doJSON(req, &created); err != nil {
		return Announcement{}, err
	}
	return created, nil
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	path := "/avisos/" + url.PathEscape(id)
	req, err := c.newRequest(ctx, "DELETE", path, nil, nil)
	if err != nil {
		return err
	}
	return c.doStatus(req)
}
