// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists site content as flat JSON documents. Each write
// replaces a whole file atomically (temp file + rename), so a read racing
// a concurrent admin write sees either the old or the new document, never
// a torn parse. Reads are not cached: the router rebuilds its slug
// catalogs from these files on every resolution so admin edits take
// effect immediately.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agrosan/site/internal/model"
)

// Document file names under the data directory.
const (
	FileProducts     = "products.json"
	FileNews         = "news.json"
	FileHomepage     = "homepage.json"
	FileAbout        = "about.json"
	FileContact      = "contact.json"
	FileDealers      = "dealers.json"
	FileFooter       = "footer.json"
	FileAnnouncement = "announcement.json"
	FileUsers        = "users.json"
)

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("store: not found")

// Store reads and writes JSON documents in a single data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// read unmarshals a document into v. Missing files surface fs.ErrNotExist.
func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// write marshals v and replaces the document atomically. Last write wins.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// Products returns the product list in display order. A missing file is an
// empty catalog, not an error.
func (s *Store) Products() ([]model.Product, error) {
	var products []model.Product
	if err := s.read(FileProducts, &products); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Position < products[j].Position
	})
	return products, nil
}

// SaveProducts replaces the product list.
func (s *Store) SaveProducts(products []model.Product) error {
	return s.write(FileProducts, products)
}

// ProductByID finds one product.
func (s *Store) ProductByID(id string) (model.Product, error) {
	products, err := s.Products()
	if err != nil {
		return model.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}

// News returns published-first news sorted by date, newest first.
func (s *Store) News() ([]model.NewsArticle, error) {
	var news []model.NewsArticle
	if err := s.read(FileNews, &news); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.SliceStable(news, func(i, j int) bool {
		return news[i].Date.After(news[j].Date)
	})
	return news, nil
}

// PublishedNews returns only the published articles, newest first.
func (s *Store) PublishedNews() ([]model.NewsArticle, error) {
	news, err := s.News()
	if err != nil {
		return nil, err
	}
	published := news[:0:0]
	for _, n := range news {
		if n.Published {
			published = append(published, n)
		}
	}
	return published, nil
}

// SaveNews replaces the news list.
func (s *Store) SaveNews(news []model.NewsArticle) error {
	return s.write(FileNews, news)
}

// NewsByID finds one article.
func (s *Store) NewsByID(id string) (model.NewsArticle, error) {
	news, err := s.News()
	if err != nil {
		return model.NewsArticle{}, err
	}
	for _, n := range news {
		if n.ID == id {
			return n, nil
		}
	}
	return model.NewsArticle{}, ErrNotFound
}

// NewsBySlug finds an article whose slug matches in the given language,
// falling back to a scan across all languages. Detail routes land here
// after the resolver kept the raw slug.
func (s *Store) NewsBySlug(slug, lang string) (model.NewsArticle, error) {
	news, err := s.News()
	if err != nil {
		return model.NewsArticle{}, err
	}
	for _, n := range news {
		if n.Slug[lang] == slug {
			return n, nil
		}
	}
	for _, n := range news {
		for _, sl := range n.Slug {
			if sl == slug {
				return n, nil
			}
		}
	}
	return model.NewsArticle{}, ErrNotFound
}

// Homepage reads the homepage document.
func (s *Store) Homepage() (model.Homepage, error) {
	var doc model.Homepage
	err := s.read(FileHomepage, &doc)
	return doc, ignoreMissing(err)
}

// SaveHomepage replaces the homepage document.
func (s *Store) SaveHomepage(doc model.Homepage) error {
	return s.write(FileHomepage, doc)
}

// About reads the about document.
func (s *Store) About() (model.About, error) {
	var doc model.About
	err := s.read(FileAbout, &doc)
	return doc, ignoreMissing(err)
}

// SaveAbout replaces the about document.
func (s *Store) SaveAbout(doc model.About) error {
	return s.write(FileAbout, doc)
}

// Contact reads the contact document.
func (s *Store) Contact() (model.Contact, error) {
	var doc model.Contact
	err := s.read(FileContact, &doc)
	return doc, ignoreMissing(err)
}

// SaveContact replaces the contact document.
func (s *Store) SaveContact(doc model.Contact) error {
	return s.write(FileContact, doc)
}

// Dealers reads the dealers document.
func (s *Store) Dealers() (model.Dealers, error) {
	var doc model.Dealers
	err := s.read(FileDealers, &doc)
	return doc, ignoreMissing(err)
}

// SaveDealers replaces the dealers document.
func (s *Store) SaveDealers(doc model.Dealers) error {
	return s.write(FileDealers, doc)
}

// Footer reads the footer document.
func (s *Store) Footer() (model.Footer, error) {
	var doc model.Footer
	err := s.read(FileFooter, &doc)
	return doc, ignoreMissing(err)
}

// SaveFooter replaces the footer document.
func (s *Store) SaveFooter(doc model.Footer) error {
	return s.write(FileFooter, doc)
}

// Announcement reads the announcement document.
func (s *Store) Announcement() (model.Announcement, error) {
	var doc model.Announcement
	err := s.read(FileAnnouncement, &doc)
	return doc, ignoreMissing(err)
}

// SaveAnnouncement replaces the announcement document.
func (s *Store) SaveAnnouncement(doc model.Announcement) error {
	return s.write(FileAnnouncement, doc)
}

// Users reads the admin account list.
func (s *Store) Users() ([]model.User, error) {
	var users []model.User
	if err := s.read(FileUsers, &users); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the admin account list.
func (s *Store) SaveUsers(users []model.User) error {
	return s.write(FileUsers, users)
}

// UserByEmail finds an admin account, case-insensitively.
func (s *Store) UserByEmail(email string) (model.User, error) {
	users, err := s.Users()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// ignoreMissing maps a missing singleton document to its zero value.
func ignoreMissing(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
