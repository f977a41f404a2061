// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"giftshop/internal/models"
)

// --- Products CRUD ---

func TestProductCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Admin.ProductCreate, http.MethodPost, "/api/admin/products", productJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d (body %s)", rec.Code, rec.Body.String())
	}
	var product models.Product
	decode(t, rec, &product)
	if !env.Cache.has(ResourceProducts) {
		t.Error("create did not invalidate products")
	}
	id := fmt.Sprint(product.ID)

	rec = call(t, env.Admin.ProductUpdate, http.MethodPut, "/api/admin/products/"+id, `{"price":15}`, "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d (body %s)", rec.Code, rec.Body.String())
	}
	decode(t, rec, &product)
	if product.Price.String() != "15" {
		t.Errorf("price = %s, want 15", product.Price)
	}
	if product.Name != "Gold Foil Invitation" {
		t.Errorf("absent field changed: name = %q", product.Name)
	}

	rec = call(t, env.Admin.ProductUpdate, http.MethodPut, "/api/admin/products/"+id, `{"name":null}`, "id", id)
	wantError(t, rec, http.StatusBadRequest, "INVALID_NAME")

	rec = call(t, env.Admin.ProductDelete, http.MethodDelete, "/api/admin/products/"+id, "", "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	var envelope struct {
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}
	decode(t, rec, &envelope)
	if envelope.Message == "" || envelope.Product.ID != product.ID {
		t.Errorf("delete envelope = %+v", envelope)
	}

	rec = call(t, env.Admin.ProductGet, http.MethodGet, "/api/admin/products/"+id, "", "id", id)
	wantError(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
}

func TestProductCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	rec := call(t, env.Admin.ProductCreate, http.MethodPost, "/api/admin/products",
		`{"name":"A","description":"B","price":-1,"category":"c","image":"i"}`)
	wantError(t, rec, http.StatusBadRequest, "INVALID_PRICE")
	if env.Cache.has(ResourceProducts) {
		t.Error("failed write should not invalidate the cache")
	}
}

// --- Categories ---

func TestCategoryCreate_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Wedding Invitations","slug":"wedding-invitations"}`
	rec := call(t, env.Admin.CategoryCreate, http.MethodPost, "/api/admin/categories", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = call(t, env.Admin.CategoryCreate, http.MethodPost, "/api/admin/categories",
		`{"name":"Other","slug":"wedding-invitations"}`)
	wantError(t, rec, http.StatusConflict, "DUPLICATE_SLUG")
}

func TestCategoryUpdate_SameSlugAllowed(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Admin.CategoryCreate, http.MethodPost, "/api/admin/categories",
		`{"name":"Baptism","slug":"baptism","imageUrl":"/img/b.jpg"}`)
	var c models.Category
	decode(t, rec, &c)
	id := fmt.Sprint(c.ID)

	rec = call(t, env.Admin.CategoryUpdate, http.MethodPut, "/api/admin/categories/"+id,
		`{"slug":"baptism","imageUrl":null}`, "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d (body %s)", rec.Code, rec.Body.String())
	}
	decode(t, rec, &c)
	if c.ImageURL != nil {
		t.Errorf("imageUrl = %q, want cleared", *c.ImageURL)
	}
	if !env.Cache.has(ResourceCategories) {
		t.Error("update did not invalidate categories")
	}
}

func TestCategorySlug(t *testing.T) {
	env := newTestEnv(t)
	rec := call(t, env.Admin.CategorySlug, http.MethodGet, "/api/admin/categories/slug?name=Invita%C8%9Bii+de+Nunt%C4%83", "")
	var body map[string]string
	decode(t, rec, &body)
	if body["slug"] != "invitatii-de-nunta" {
		t.Errorf("slug = %q", body["slug"])
	}
}

// --- Orders ---

func TestOrderStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Public.CreateOrder, http.MethodPost, "/api/orders", orderJSON)
	var order models.Order
	decode(t, rec, &order)
	id := fmt.Sprint(order.ID)

	rec = call(t, env.Admin.OrderStatus, http.MethodPut, "/api/admin/orders/"+id+"/status", `{"status":"shipped"}`, "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: %d (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Order
	decode(t, rec, &updated)
	if updated.Status != models.OrderStatusShipped {
		t.Errorf("status = %q, want shipped", updated.Status)
	}
	if !updated.UpdatedAt.After(order.UpdatedAt) {
		t.Errorf("updatedAt not advanced: %v -> %v", order.UpdatedAt, updated.UpdatedAt)
	}

	rec = call(t, env.Admin.OrderStatus, http.MethodPut, "/api/admin/orders/"+id+"/status", `{"status":"lost"}`, "id", id)
	wantError(t, rec, http.StatusBadRequest, "INVALID_STATUS")

	rec = call(t, env.Admin.OrderStatus, http.MethodPut, "/api/admin/orders/"+id+"/status", `{}`, "id", id)
	wantError(t, rec, http.StatusBadRequest, "MISSING_STATUS")

	rec = call(t, env.Admin.OrdersList, http.MethodGet, "/api/admin/orders?status=shipped", "")
	var orders []models.Order
	decode(t, rec, &orders)
	if len(orders) != 1 {
		t.Errorf("shipped orders = %d, want 1", len(orders))
	}

	rec = call(t, env.Admin.OrdersList, http.MethodGet, "/api/admin/orders?status=bogus", "")
	wantError(t, rec, http.StatusBadRequest, "INVALID_STATUS")

	rec = call(t, env.Admin.OrderDelete, http.MethodDelete, "/api/admin/orders/"+id, "", "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = call(t, env.Admin.OrderGet, http.MethodGet, "/api/admin/orders/"+id, "", "id", id)
	wantError(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
}

// --- Appointments ---

func TestAppointmentStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Public.CreateAppointment, http.MethodPost, "/api/appointments",
		`{"name":"Ioana","email":"ioana@example.com","phone":"0700","preferredDate":"2026-06-01","preferredTime":"10:00","occasionType":"wedding"}`)
	var appt models.Appointment
	decode(t, rec, &appt)
	id := fmt.Sprint(appt.ID)

	rec = call(t, env.Admin.AppointmentStatus, http.MethodPut, "/api/admin/appointments/"+id+"/status", `{"status":"confirmed"}`, "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = call(t, env.Admin.AppointmentsList, http.MethodGet, "/api/admin/appointments?status=confirmed", "")
	var list []models.Appointment
	decode(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("confirmed = %d, want 1", len(list))
	}

	rec = call(t, env.Admin.AppointmentGet, http.MethodGet, "/api/admin/appointments/404", "", "id", "404")
	wantError(t, rec, http.StatusNotFound, "APPOINTMENT_NOT_FOUND")
}

// --- Comments ---

func TestCommentsModerationQueue(t *testing.T) {
	env := newTestEnv(t)
	story := createStory(t, env)
	sid := fmt.Sprint(story.ID)

	for _, name := range []string{"Maria", "Elena"} {
		rec := call(t, env.Public.CreateStoryComment, http.MethodPost, "/api/stories/"+sid+"/comments",
			`{"name":"`+name+`","email":"x@example.com","message":"Lovely"}`, "id", sid)
		if rec.Code != http.StatusCreated {
			t.Fatalf("comment: status %d (body %s)", rec.Code, rec.Body.String())
		}
	}

	var pending []models.Comment
	rec := call(t, env.Admin.CommentsList, http.MethodGet, "/api/admin/comments?status=pending&storyId="+sid, "")
	decode(t, rec, &pending)
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	cid := fmt.Sprint(pending[0].ID)
	rec = call(t, env.Admin.CommentStatus, http.MethodPut, "/api/admin/comments/"+cid+"/status", `{"status":"rejected"}`, "id", cid)
	if rec.Code != http.StatusOK {
		t.Fatalf("reject: status %d", rec.Code)
	}
	if !env.Cache.has(ResourceComments) {
		t.Error("moderation did not invalidate comments")
	}

	var all []models.Comment
	rec = call(t, env.Admin.StoryComments, http.MethodGet, "/api/admin/stories/"+sid+"/comments?status=all", "", "id", sid)
	decode(t, rec, &all)
	if len(all) != 2 {
		t.Errorf("status=all = %d, want 2", len(all))
	}

	rec = call(t, env.Admin.CommentsList, http.MethodGet, "/api/admin/comments?storyId=abc", "")
	wantError(t, rec, http.StatusBadRequest, "INVALID_STORY_ID")

	rec = call(t, env.Admin.CommentDelete, http.MethodDelete, "/api/admin/comments/"+cid, "", "id", cid)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
}

func TestStoryDelete_KeepsComments(t *testing.T) {
	env := newTestEnv(t)
	story := createStory(t, env)
	sid := fmt.Sprint(story.ID)

	call(t, env.Public.CreateStoryComment, http.MethodPost, "/api/stories/"+sid+"/comments",
		`{"name":"Maria","email":"x@example.com","message":"Lovely"}`, "id", sid)

	rec := call(t, env.Admin.StoryDelete, http.MethodDelete, "/api/admin/stories/"+sid, "", "id", sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete story: status %d", rec.Code)
	}

	var left []models.Comment
	rec = call(t, env.Admin.CommentsList, http.MethodGet, "/api/admin/comments?storyId="+sid, "")
	decode(t, rec, &left)
	if len(left) != 1 {
		t.Errorf("comments after story delete = %d, want 1", len(left))
	}
}

// --- Testimonials ---

func TestTestimonialRatingBound(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Admin.TestimonialCreate, http.MethodPost, "/api/admin/testimonials",
		`{"name":"Ana","role":"Bride","content":"Perfect","rating":6,"image":"/i.jpg"}`)
	wantError(t, rec, http.StatusBadRequest, "INVALID_RATING")

	rec = call(t, env.Admin.TestimonialCreate, http.MethodPost, "/api/admin/testimonials",
		`{"name":"Ana","role":"Bride","content":"Perfect","rating":5,"image":"/i.jpg","isFeatured":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d (body %s)", rec.Code, rec.Body.String())
	}
	var tm models.Testimonial
	decode(t, rec, &tm)
	id := fmt.Sprint(tm.ID)

	rec = call(t, env.Admin.TestimonialUpdate, http.MethodPut, "/api/admin/testimonials/"+id, `{"rating":0}`, "id", id)
	wantError(t, rec, http.StatusBadRequest, "INVALID_RATING")

	var featured []models.Testimonial
	rec = call(t, env.Public.ListTestimonials, http.MethodGet, "/api/testimonials?featured=true", "")
	decode(t, rec, &featured)
	if len(featured) != 1 {
		t.Errorf("featured = %d, want 1", len(featured))
	}
}

// --- Tracking codes ---

func TestTrackingCodeUpsert(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Admin.TrackingCodeUpsert, http.MethodPost, "/api/admin/tracking-codes",
		`{"type":"meta_pixel","code":"first"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first upsert: status %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	rec = call(t, env.Admin.TrackingCodeUpsert, http.MethodPost, "/api/admin/tracking-codes",
		mustJSON(t, map[string]any{"type": "meta_pixel", "code": "second", "isActive": false}))
	if rec.Code != http.StatusOK {
		t.Fatalf("second upsert: status %d, want 200", rec.Code)
	}
	var tc models.TrackingCode
	decode(t, rec, &tc)
	if tc.Code != "second" || tc.IsActive {
		t.Errorf("upserted = %+v", tc)
	}

	var all []models.TrackingCode
	rec = call(t, env.Admin.TrackingCodesList, http.MethodGet, "/api/admin/tracking-codes", "")
	decode(t, rec, &all)
	if len(all) != 1 {
		t.Errorf("codes = %d, want 1 row per type", len(all))
	}

	rec = call(t, env.Admin.TrackingCodeUpsert, http.MethodPost, "/api/admin/tracking-codes", `{"type":"gtm","code":"x"}`)
	wantError(t, rec, http.StatusBadRequest, "INVALID_TYPE")

	rec = call(t, env.Admin.TrackingCodeDelete, http.MethodDelete, "/api/admin/tracking-codes/meta_pixel", "", "type", "meta_pixel")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = call(t, env.Admin.TrackingCodeDelete, http.MethodDelete, "/api/admin/tracking-codes/meta_pixel", "", "type", "meta_pixel")
	wantError(t, rec, http.StatusNotFound, "TRACKING_CODE_NOT_FOUND")
}

// --- Hero slides ---

func TestHeroSlideCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := call(t, env.Admin.HeroSlideCreate, http.MethodPost, "/api/admin/hero-slides", slideJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d (body %s)", rec.Code, rec.Body.String())
	}
	var slide models.HeroSlide
	decode(t, rec, &slide)
	if !slide.IsActive {
		t.Error("new slides default to active")
	}
	id := fmt.Sprint(slide.ID)

	rec = call(t, env.Admin.HeroSlideUpdate, http.MethodPut, "/api/admin/hero-slides/"+id, `{"displayOrder":3}`, "id", id)
	decode(t, rec, &slide)
	if slide.DisplayOrder != 3 {
		t.Errorf("displayOrder = %d, want 3", slide.DisplayOrder)
	}

	rec = call(t, env.Admin.HeroSlideUpdate, http.MethodPut, "/api/admin/hero-slides/"+id, `{"isActive":null}`, "id", id)
	wantError(t, rec, http.StatusBadRequest, "INVALID_IS_ACTIVE")

	rec = call(t, env.Admin.HeroSlideDelete, http.MethodDelete, "/api/admin/hero-slides/"+id, "", "id", id)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if !env.Cache.has(ResourceHeroSlides) {
		t.Error("hero slide writes did not invalidate the cache")
	}
}
