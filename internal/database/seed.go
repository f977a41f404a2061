// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"giftshop/internal/catalog"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Categories []struct {
		Name         string `yaml:"name"`
		Slug         string `yaml:"slug"`
		DisplayOrder int    `yaml:"displayOrder"`
		ImageURL     string `yaml:"imageUrl"`
	} `yaml:"categories"`
	Products []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Price       string `yaml:"price"`
		Category    string `yaml:"category"`
		Image       string `yaml:"image"`
	} `yaml:"products"`
	HeroSlides []struct {
		Title        string `yaml:"title"`
		Subtitle     string `yaml:"subtitle"`
		Description  string `yaml:"description"`
		Image        string `yaml:"image"`
		ButtonText   string `yaml:"buttonText"`
		ButtonLink   string `yaml:"buttonLink"`
		DisplayOrder int    `yaml:"displayOrder"`
	} `yaml:"heroSlides"`
	Testimonials []struct {
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
		Rating  int    `yaml:"rating"`
		Image   string `yaml:"image"`
	} `yaml:"testimonials"`
	Stories []struct {
		Title   string `yaml:"title"`
		Client  string `yaml:"client"`
		Date    string `yaml:"date"`
		Excerpt string `yaml:"excerpt"`
		Content string `yaml:"content"`
		Image   string `yaml:"image"`
	} `yaml:"stories"`
}

// Seed populates an empty catalog with the embedded development data. It
// goes through the service so seeded rows pass the same validation as admin
// input, and works with any storage driver. Seeding is skipped when any
// category already exists.
func Seed(ctx context.Context, svc *catalog.Service, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	existing, err := svc.ListCategories(ctx, catalog.CategoryFilter{Page: catalog.Page{Limit: 1}})
	if err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("database already seeded, skipping")
		return nil
	}

	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("seed decode: %w", err)
	}

	for _, c := range data.Categories {
		in := catalog.CreateCategoryInput{Name: c.Name, Slug: c.Slug, DisplayOrder: &c.DisplayOrder}
		if c.ImageURL != "" {
			in.ImageURL = &c.ImageURL
		}
		if _, err := svc.CreateCategory(ctx, in); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}

	for _, p := range data.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("seed product %q price: %w", p.Name, err)
		}
		if _, err := svc.CreateProduct(ctx, catalog.CreateProductInput{
			Name: p.Name, Description: p.Description, Price: price, Category: p.Category, Image: p.Image,
		}); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	for _, h := range data.HeroSlides {
		if _, err := svc.CreateHeroSlide(ctx, catalog.CreateHeroSlideInput{
			Title: h.Title, Subtitle: h.Subtitle, Description: h.Description, Image: h.Image,
			ButtonText: h.ButtonText, ButtonLink: h.ButtonLink, DisplayOrder: &h.DisplayOrder,
		}); err != nil {
			return fmt.Errorf("seed hero slide %q: %w", h.Title, err)
		}
	}

	for _, t := range data.Testimonials {
		if _, err := svc.CreateTestimonial(ctx, catalog.CreateTestimonialInput{
			Name: t.Name, Role: t.Role, Content: t.Content, Rating: &t.Rating, Image: t.Image,
		}); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
		}
	}

	for _, s := range data.Stories {
		if _, err := svc.CreateStory(ctx, catalog.CreateStoryInput{
			Title: s.Title, Client: s.Client, Date: s.Date, Excerpt: s.Excerpt, Content: s.Content, Image: s.Image,
		}); err != nil {
			return fmt.Errorf("seed story %q: %w", s.Title, err)
		}
	}

	logger.Info("database seeded",
		zap.Int("categories", len(data.Categories)),
		zap.Int("products", len(data.Products)),
		zap.Int("hero_slides", len(data.HeroSlides)),
		zap.Int("testimonials", len(data.Testimonials)),
		zap.Int("stories", len(data.Stories)),
	)
	return nil
}
