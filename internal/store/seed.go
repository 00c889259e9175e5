// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/agrosan/site/internal/auth"
	"github.com/agrosan/site/internal/model"
)

// Seed writes starter documents for any missing data files so a fresh
// checkout serves a complete site. Existing files are never touched.
// adminPassword seeds the first admin account; it is only used when
// users.json does not exist yet.
func (s *Store) Seed(adminPassword string) error {
	if err := s.seedIfMissing(FileProducts, seedProducts()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileNews, seedNews()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileHomepage, seedHomepage()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileAbout, seedAbout()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileContact, seedContact()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileDealers, seedDealers()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileFooter, seedFooter()); err != nil {
		return err
	}
	if err := s.seedIfMissing(FileAnnouncement, model.Announcement{}); err != nil {
		return err
	}
	return s.seedUsers(adminPassword)
}

// seedIfMissing writes doc under name unless the file already exists.
func (s *Store) seedIfMissing(name string, doc any) error {
	if _, err := os.Stat(filepath.Join(s.dir, name)); err == nil {
		return nil
	}
	slog.Info("seeding data file", "file", name)
	return s.write(name, doc)
}

// seedUsers creates the initial admin account when none exists.
func (s *Store) seedUsers(adminPassword string) error {
	if _, err := os.Stat(filepath.Join(s.dir, FileUsers)); err == nil {
		return nil
	}
	if adminPassword == "" {
		slog.Warn("no admin password configured, skipping admin account seed")
		return nil
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}
	slog.Info("seeding admin account", "email", "admin@agrosan.example")
	return s.write(FileUsers, []model.User{{
		Email:        "admin@agrosan.example",
		Name:         "Admin",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}})
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:   "patlatma",
			Name: model.Localized{"tr": "Dipkazan (Patlatma)", "en": "Subsoiler", "ru": "Глубокорыхлитель"},
			Slug: model.Localized{"tr": "patlatma", "en": "subsoiler", "ru": "glubokorykhlitel"},
			Summary: model.Localized{
				"tr": "Taban taşını kırarak toprağın havalanmasını sağlar.",
				"en": "Breaks the hardpan layer and aerates the soil.",
				"ru": "Разрушает плужную подошву и аэрирует почву.",
			},
			Featured: true,
			Position: 1,
		},
		{
			ID:   "diskaro",
			Name: model.Localized{"tr": "Diskaro", "en": "Disc Harrow", "ru": "Дисковая борона"},
			Slug: model.Localized{"tr": "diskaro", "en": "disc-harrow", "ru": "diskovaya-borona"},
			Summary: model.Localized{
				"tr": "Anız bozma ve tohum yatağı hazırlığında kullanılır.",
				"en": "Used for stubble breaking and seedbed preparation.",
				"ru": "Используется для лущения стерни и подготовки посевного ложа.",
			},
			Position: 2,
		},
		{
			ID:   "pulluk",
			Name: model.Localized{"tr": "Pulluk", "en": "Plough", "ru": "Плуг"},
			Slug: model.Localized{"tr": "pulluk", "en": "plough", "ru": "plug"},
			Summary: model.Localized{
				"tr": "Toprağı devirip kabartan temel işleme ekipmanı.",
				"en": "Primary tillage implement that turns and loosens the soil.",
				"ru": "Основное орудие для оборота и рыхления почвы.",
			},
			Position: 3,
		},
	}
}

func seedNews() []model.NewsArticle {
	return []model.NewsArticle{
		{
			ID:    "agritechnica-2025",
			Title: model.Localized{"tr": "Agritechnica 2025 fuarındayız", "en": "We are at Agritechnica 2025", "ru": "Мы на выставке Agritechnica 2025"},
			Slug:  model.Localized{"tr": "agritechnica-2025-fuarindayiz", "en": "we-are-at-agritechnica-2025", "ru": "my-na-agritechnica-2025"},
			Excerpt: model.Localized{
				"tr": "Yeni ürün serimizi Hannover'de tanıtıyoruz.",
				"en": "Presenting our new product line in Hanover.",
				"ru": "Представляем новую линейку продукции в Ганновере.",
			},
			Date:      time.Date(2025, time.November, 9, 0, 0, 0, 0, time.UTC),
			Published: true,
		},
	}
}

func seedHomepage() model.Homepage {
	return model.Homepage{
		HeroTitle: model.Localized{
			"tr": "Toprağa değer katan makineler",
			"en": "Machinery that adds value to the soil",
			"ru": "Техника, повышающая ценность земли",
		},
		HeroSubtitle: model.Localized{
			"tr": "1978'den beri tarım makineleri üretiyoruz.",
			"en": "Manufacturing agricultural machinery since 1978.",
			"ru": "Производим сельскохозяйственную технику с 1978 года.",
		},
	}
}

func seedAbout() model.About {
	return model.About{
		Title: model.Localized{"tr": "Hakkımızda", "en": "About Us", "ru": "О компании"},
		Body: model.Localized{
			"tr": "Agrosan Makina, Konya'da kurulmuş bir tarım makineleri üreticisidir.",
			"en": "Agrosan Makina is an agricultural machinery manufacturer based in Konya.",
			"ru": "Agrosan Makina — производитель сельскохозяйственной техники из Коньи.",
		},
	}
}

func seedContact() model.Contact {
	return model.Contact{
		Address: model.Localized{
			"tr": "Organize Sanayi Bölgesi, Konya, Türkiye",
			"en": "Organized Industrial Zone, Konya, Türkiye",
			"ru": "Организованная промышленная зона, Конья, Турция",
		},
		Phone: "+90 332 000 00 00",
		Email: "info@agrosan.example",
	}
}

func seedDealers() model.Dealers {
	return model.Dealers{
		Domestic: []model.Dealer{
			{Name: "Konya Tarım", City: model.Localized{"tr": "Konya", "en": "Konya", "ru": "Конья"}},
			{Name: "Ege Makine", City: model.Localized{"tr": "İzmir", "en": "Izmir", "ru": "Измир"}},
		},
		International: []model.Dealer{
			{
				Name:    "AgroVostok",
				City:    model.Localized{"tr": "Krasnodar", "en": "Krasnodar", "ru": "Краснодар"},
				Country: model.Localized{"tr": "Rusya", "en": "Russia", "ru": "Россия"},
			},
		},
	}
}

func seedFooter() model.Footer {
	return model.Footer{
		Text: model.Localized{
			"tr": "© Agrosan Makina. Tüm hakları saklıdır.",
			"en": "© Agrosan Makina. All rights reserved.",
			"ru": "© Agrosan Makina. Все права защищены.",
		},
	}
}
