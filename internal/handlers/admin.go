// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// Admin groups the back-office handlers. All routes sit behind
// RequireAdmin; successful writes drop the cached public responses of the
// resource they touched.
type Admin struct {
	svc     *catalog.Service
	cache   Invalidator
	uploads Uploader
}

// NewAdmin creates a new Admin handler group. cache and uploads may be nil:
// without a cache nothing is invalidated, without uploads POST /uploads
// answers 503.
func NewAdmin(svc *catalog.Service, cache Invalidator, uploads Uploader) *Admin {
	if cache == nil {
		cache = nopInvalidator{}
	}
	return &Admin{svc: svc, cache: cache, uploads: uploads}
}

// --- Products ---

// ProductsList is the admin product list; same filters as the storefront.
func (a *Admin) ProductsList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	q := r.URL.Query()
	products, err := a.svc.ListProducts(r.Context(), catalog.ProductFilter{
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

func (a *Admin) ProductGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	product, err := a.svc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, product)
}

func (a *Admin) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	product, err := a.svc.CreateProduct(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceProducts)
	writeJSON(w, r, http.StatusCreated, product)
}

func (a *Admin) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.UpdateProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	product, err := a.svc.UpdateProduct(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceProducts)
	writeJSON(w, r, http.StatusOK, product)
}

func (a *Admin) ProductDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	product, err := a.svc.DeleteProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceProducts)
	deleted(w, r, "Product deleted successfully", "product", product)
}

// --- Categories ---

func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	categories, err := a.svc.ListCategories(r.Context(), catalog.CategoryFilter{Page: page})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, categories)
}

func (a *Admin) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	category, err := a.svc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, category)
}

// CategorySlug suggests a slug for the category form: GET
// /categories/slug?name=.
func (a *Admin) CategorySlug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"slug": a.svc.SuggestSlug(r.URL.Query().Get("name")),
	})
}

func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateCategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	category, err := a.svc.CreateCategory(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceCategories)
	writeJSON(w, r, http.StatusCreated, category)
}

func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.UpdateCategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	category, err := a.svc.UpdateCategory(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceCategories)
	writeJSON(w, r, http.StatusOK, category)
}

func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	category, err := a.svc.DeleteCategory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceCategories)
	deleted(w, r, "Category deleted successfully", "category", category)
}

// --- Hero slides ---

// HeroSlidesList shows every slide unless active=true is passed.
func (a *Admin) HeroSlidesList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slides, err := a.svc.ListHeroSlides(r.Context(), catalog.HeroSlideFilter{
		ActiveOnly: flagParam(r, "active", false),
		Page:       page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, slides)
}

func (a *Admin) HeroSlideGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slide, err := a.svc.GetHeroSlide(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, slide)
}

func (a *Admin) HeroSlideCreate(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateHeroSlideInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	slide, err := a.svc.CreateHeroSlide(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceHeroSlides)
	writeJSON(w, r, http.StatusCreated, slide)
}

func (a *Admin) HeroSlideUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.UpdateHeroSlideInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	slide, err := a.svc.UpdateHeroSlide(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceHeroSlides)
	writeJSON(w, r, http.StatusOK, slide)
}

func (a *Admin) HeroSlideDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slide, err := a.svc.DeleteHeroSlide(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceHeroSlides)
	deleted(w, r, "Hero slide deleted successfully", "slide", slide)
}

// --- Testimonials ---

func (a *Admin) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := a.svc.ListTestimonials(r.Context(), catalog.TestimonialFilter{
		FeaturedOnly: flagParam(r, "featured", false),
		Page:         page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (a *Admin) TestimonialGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	t, err := a.svc.GetTestimonial(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, t)
}

func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateTestimonialInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	t, err := a.svc.CreateTestimonial(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceTestimonials)
	writeJSON(w, r, http.StatusCreated, t)
}

func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.UpdateTestimonialInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	t, err := a.svc.UpdateTestimonial(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceTestimonials)
	writeJSON(w, r, http.StatusOK, t)
}

func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	t, err := a.svc.DeleteTestimonial(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceTestimonials)
	deleted(w, r, "Testimonial deleted successfully", "testimonial", t)
}

// --- Stories ---

func (a *Admin) StoriesList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	stories, err := a.svc.ListStories(r.Context(), catalog.StoryFilter{
		Search: r.URL.Query().Get("search"),
		Page:   page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stories)
}

func (a *Admin) StoryGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	story, err := a.svc.GetStory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, story)
}

func (a *Admin) StoryCreate(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateStoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	story, err := a.svc.CreateStory(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceStories)
	writeJSON(w, r, http.StatusCreated, story)
}

func (a *Admin) StoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var in catalog.UpdateStoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	story, err := a.svc.UpdateStory(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceStories)
	writeJSON(w, r, http.StatusOK, story)
}

// StoryDelete removes a story. Its comments stay in place.
func (a *Admin) StoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	story, err := a.svc.DeleteStory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceStories, ResourceComments)
	deleted(w, r, "Story deleted successfully", "story", story)
}

// StoryComments lists a story's comments for moderation. Visibility defaults
// to approved only; status=all shows every comment.
func (a *Admin) StoryComments(w http.ResponseWriter, r *http.Request) {
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
	comments, err := a.svc.ListCommentsForStory(r.Context(), id, r.URL.Query().Get("status"), page)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, comments)
}

// --- Comments ---

// CommentsList is the moderation queue: GET /comments?status=&storyId=.
func (a *Admin) CommentsList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	storyID, err := queryID(r, "storyId", "INVALID_STORY_ID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	comments, err := a.svc.ListComments(r.Context(), r.URL.Query().Get("status"), storyID, page)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, comments)
}

// statusBody is the payload of every PUT .../status route.
type statusBody struct {
	Status string `json:"status"`
}

func (a *Admin) CommentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	comment, err := a.svc.ModerateComment(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceComments)
	writeJSON(w, r, http.StatusOK, comment)
}

func (a *Admin) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	comment, err := a.svc.DeleteComment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceComments)
	deleted(w, r, "Comment deleted successfully", "comment", comment)
}

// --- Orders ---

// OrdersList handles GET /orders?status=&email=.
func (a *Admin) OrdersList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	q := r.URL.Query()
	orders, err := a.svc.ListOrders(r.Context(), catalog.OrderFilter{
		Status: models.OrderStatus(q.Get("status")),
		Email:  q.Get("email"),
		Page:   page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, orders)
}

func (a *Admin) OrderGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	order, err := a.svc.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, order)
}

func (a *Admin) OrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	order, err := a.svc.UpdateOrderStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, order)
}

func (a *Admin) OrderDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	order, err := a.svc.DeleteOrder(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	deleted(w, r, "Order deleted successfully", "order", order)
}

// --- Appointments ---

func (a *Admin) AppointmentsList(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := a.svc.ListAppointments(r.Context(), catalog.AppointmentFilter{
		Status: models.AppointmentStatus(r.URL.Query().Get("status")),
		Page:   page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (a *Admin) AppointmentGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	appt, err := a.svc.GetAppointment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, appt)
}

func (a *Admin) AppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body statusBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	appt, err := a.svc.UpdateAppointmentStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, appt)
}

// --- Tracking codes ---

// TrackingCodesList shows every code unless active=true is passed.
func (a *Admin) TrackingCodesList(w http.ResponseWriter, r *http.Request) {
	codes, err := a.svc.ListTrackingCodes(r.Context(), flagParam(r, "active", false))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, codes)
}

// TrackingCodeUpsert creates or replaces the code for a type: 201 when a
// row was inserted, 200 when an existing one was updated.
func (a *Admin) TrackingCodeUpsert(w http.ResponseWriter, r *http.Request) {
	var in catalog.UpsertTrackingCodeInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	tc, created, err := a.svc.UpsertTrackingCode(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceTrackingCodes)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, tc)
}

func (a *Admin) TrackingCodeDelete(w http.ResponseWriter, r *http.Request) {
	tc, err := a.svc.DeleteTrackingCode(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	a.cache.InvalidateResource(r.Context(), ResourceTrackingCodes)
	deleted(w, r, "Tracking code deleted successfully", "trackingCode", tc)
}
