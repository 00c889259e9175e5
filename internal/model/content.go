// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Homepage is the singleton homepage content document.
type Homepage struct {
	HeroTitle    Localized   `json:"hero_title"`
	HeroSubtitle Localized   `json:"hero_subtitle"`
	HeroImage    string      `json:"hero_image,omitempty"`
	Slides       []HeroSlide `json:"slides,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty"`
}

// HeroSlide is one slide of the homepage hero carousel.
type HeroSlide struct {
	Title    Localized `json:"title"`
	Subtitle Localized `json:"subtitle,omitempty"`
	Image    string    `json:"image"`
	Link     string    `json:"link,omitempty"`
}

// About is the singleton about-us document. Body is markdown.
type About struct {
	Title     Localized `json:"title"`
	Body      Localized `json:"body"`
	Image     string    `json:"image,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Contact is the singleton contact document.
type Contact struct {
	Address   Localized `json:"address"`
	Phone     string    `json:"phone"`
	Fax       string    `json:"fax,omitempty"`
	Email     string    `json:"email"`
	MapEmbed  string    `json:"map_embed,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Dealer is a single sales point on the dealers pages.
type Dealer struct {
	Name    string    `json:"name"`
	City    Localized `json:"city"`
	Country Localized `json:"country,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
}

// Dealers is the singleton dealers document, split into the domestic and
// international sub-pages.
type Dealers struct {
	Domestic      []Dealer  `json:"domestic"`
	International []Dealer  `json:"international"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// Footer is the singleton footer content document.
type Footer struct {
	Text        Localized `json:"text"`
	SocialLinks []Social  `json:"social_links,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Social is a single social media link in the footer.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Announcement is the singleton site-wide announcement banner.
type Announcement struct {
	Enabled   bool      `json:"enabled"`
	Text      Localized `json:"text"`
	Link      string    `json:"link,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// User is an admin panel account. PasswordHash is an encoded argon2id hash.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
