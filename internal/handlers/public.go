// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"giftshop/internal/catalog"
	"giftshop/internal/markdown"
	"giftshop/internal/models"
	"giftshop/internal/observability"
)

// Public groups the storefront handlers. None of them require a session.
type Public struct {
	svc *catalog.Service
}

// NewPublic creates a new Public handler group.
func NewPublic(svc *catalog.Service) *Public {
	return &Public{svc: svc}
}

// --- Catalog ---

// ListProducts handles GET /api/products?category=&search=&limit=&offset=.
func (p *Public) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	q := r.URL.Query()
	products, err := p.svc.ListProducts(r.Context(), catalog.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, products)
}

func (p *Public) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	product, err := p.svc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	categories, err := p.svc.ListCategories(r.Context(), catalog.CategoryFilter{Page: page})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, categories)
}

func (p *Public) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	category, err := p.svc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, category)
}

// ListHeroSlides returns active slides unless active=false is passed.
func (p *Public) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slides, err := p.svc.ListHeroSlides(r.Context(), catalog.HeroSlideFilter{
		ActiveOnly: flagParam(r, "active", true),
		Page:       page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, slides)
}

func (p *Public) GetHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slide, err := p.svc.GetHeroSlide(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, slide)
}

// ListTestimonials handles GET /api/testimonials?featured=true.
func (p *Public) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := p.svc.ListTestimonials(r.Context(), catalog.TestimonialFilter{
		FeaturedOnly: flagParam(r, "featured", false),
		Page:         page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (p *Public) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	t, err := p.svc.GetTestimonial(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, t)
}

// --- Stories ---

// storyView is a story with its Markdown rendered for display.
type storyView struct {
	models.Story
	ContentHTML string `json:"contentHtml"`
}

func (p *Public) ListStories(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	stories, err := p.svc.ListStories(r.Context(), catalog.StoryFilter{
		Search: r.URL.Query().Get("search"),
		Page:   page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stories)
}

// GetStory returns a story plus contentHtml. A render failure leaves
// contentHtml empty rather than failing the read.
func (p *Public) GetStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	story, err := p.svc.GetStory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	view := storyView{Story: story}
	view.ContentHTML, err = markdown.ToHTML(story.Content)
	if err != nil {
		observability.FromContext(r.Context()).Warn("render story markdown",
			zap.Int64("story_id", story.ID),
			zap.Error(err),
		)
	}
	writeJSON(w, r, http.StatusOK, view)
}

// ListStoryComments returns the approved comments of a story.
func (p *Public) ListStoryComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	comments, err := p.svc.ListCommentsForStory(r.Context(), id, "", page)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, comments)
}

// CreateStoryComment submits a comment for moderation. The story id in the
// path wins over any storyId in the body.
func (p *Public) CreateStoryComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.CreateCommentInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	in.StoryID = id

	comment, err := p.svc.CreateComment(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, comment)
}

// --- Tracking codes ---

// ListTrackingCodes returns only active codes; the storefront injects them.
func (p *Public) ListTrackingCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := p.svc.ListTrackingCodes(r.Context(), true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, codes)
}

func (p *Public) GetTrackingCode(w http.ResponseWriter, r *http.Request) {
	tc, err := p.svc.GetTrackingCode(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tc)
}

// --- Customer submissions ---

func (p *Public) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateOrderInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	order, err := p.svc.CreateOrder(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, order)
}

// OrdersByEmail handles GET /api/orders/by-email?email=.
func (p *Public) OrdersByEmail(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	orders, err := p.svc.ListOrdersByEmail(r.Context(), r.URL.Query().Get("email"), page)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orders)
}

func (p *Public) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateAppointmentInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	appt, err := p.svc.CreateAppointment(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, appt)
}

// Contact relays a contact-form message. Nothing is stored.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	var in catalog.ContactInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	if err := p.svc.SubmitContact(r.Context(), in); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message received successfully",
	})
}
