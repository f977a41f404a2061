// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"giftshop/internal/models"
	v "giftshop/internal/validate"
)

// Validators run on normalized input and report the first failing field.
// The check order for each entity is part of its contract.

const (
	minRating = 1
	maxRating = 5
)

// setNonEmpty accepts an absent field, or a present one with text.
func setNonEmpty(o Optional[string]) bool {
	return !o.Set || (o.Present() && v.RequireNonEmpty(o.Value))
}

// setNotNull accepts an absent field, or a present non-null one.
func setNotNull[T any](o Optional[T]) bool {
	return !o.Set || !o.Null
}

func moneyMessage(field string) string {
	return field + " must be a positive amount in whole cents below 10000000000"
}

func result(c *v.Checker) *Error {
	if fe := c.Err(); fe != nil {
		return fromFieldError(fe)
	}
	return nil
}

func validateCreateProduct(in CreateProductInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Description), "description", "MISSING_DESCRIPTION", "description is required").
		Check(v.IsMoney(in.Price), "price", "INVALID_PRICE", moneyMessage("price")).
		Check(v.RequireNonEmpty(in.Category), "category", "MISSING_CATEGORY", "category is required").
		Check(v.RequireNonEmpty(in.Image), "image", "MISSING_IMAGE", "image is required")
	return result(&c)
}

func validateUpdateProduct(in UpdateProductInput) *Error {
	var c v.Checker
	c.Check(setNonEmpty(in.Name), "name", "INVALID_NAME", "name must be a non-empty string").
		Check(setNonEmpty(in.Description), "description", "INVALID_DESCRIPTION", "description must be a non-empty string").
		Check(!in.Price.Set || (in.Price.Present() && v.IsMoney(in.Price.Value)), "price", "INVALID_PRICE", moneyMessage("price")).
		Check(setNonEmpty(in.Category), "category", "INVALID_CATEGORY", "category must be a non-empty string").
		Check(setNonEmpty(in.Image), "image", "INVALID_IMAGE", "image must be a non-empty string")
	return result(&c)
}

func validateCreateCategory(in CreateCategoryInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Slug), "slug", "MISSING_SLUG", "slug is required").
		Check(*in.DisplayOrder >= 0 && v.IsInt32(*in.DisplayOrder), "displayOrder", "INVALID_DISPLAY_ORDER", "displayOrder must be a non-negative integer")
	return result(&c)
}

func validateUpdateCategory(in UpdateCategoryInput) *Error {
	var c v.Checker
	c.Check(setNonEmpty(in.Name), "name", "INVALID_NAME", "name must be a non-empty string").
		Check(setNonEmpty(in.Slug), "slug", "INVALID_SLUG", "slug must be a non-empty string").
		Check(!in.DisplayOrder.Set || (in.DisplayOrder.Present() && in.DisplayOrder.Value >= 0 && v.IsInt32(in.DisplayOrder.Value)), "displayOrder", "INVALID_DISPLAY_ORDER", "displayOrder must be a non-negative integer")
	return result(&c)
}

func validItems(items []models.OrderItem) bool {
	for _, it := range items {
		if it.Quantity < 1 || it.UnitPrice.IsNegative() {
			return false
		}
		if it.ProductID == nil && !v.RequireNonEmpty(it.Name) {
			return false
		}
	}
	return true
}

func validateCreateOrder(in CreateOrderInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.CustomerName), "customerName", "MISSING_CUSTOMER_NAME", "customer name is required").
		Check(v.RequireNonEmpty(in.CustomerEmail), "customerEmail", "MISSING_CUSTOMER_EMAIL", "customer email is required").
		Check(v.IsValidEmail(in.CustomerEmail), "customerEmail", "INVALID_EMAIL", "customer email is not a valid email address").
		Check(v.RequireNonEmpty(in.CustomerPhone), "customerPhone", "MISSING_CUSTOMER_PHONE", "customer phone is required").
		Check(v.RequireNonEmpty(in.ShippingAddress), "shippingAddress", "MISSING_SHIPPING_ADDRESS", "shipping address is required").
		Check(v.IsMoney(in.TotalAmount), "totalAmount", "INVALID_TOTAL_AMOUNT", moneyMessage("total amount")).
		Check(len(in.Items) > 0, "items", "MISSING_ITEMS", "order must contain at least one item").
		Check(validItems(in.Items), "items", "INVALID_ITEM", "each item needs a product id or name, a quantity of at least 1 and a non-negative unit price")
	return result(&c)
}

func validateCreateAppointment(in CreateAppointmentInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Email), "email", "MISSING_EMAIL", "email is required").
		Check(v.IsValidEmail(in.Email), "email", "INVALID_EMAIL", "email is not a valid email address").
		Check(v.RequireNonEmpty(in.Phone), "phone", "MISSING_PHONE", "phone is required").
		Check(v.RequireNonEmpty(in.PreferredDate), "preferredDate", "MISSING_PREFERRED_DATE", "preferred date is required").
		Check(v.RequireNonEmpty(in.PreferredTime), "preferredTime", "MISSING_PREFERRED_TIME", "preferred time is required").
		Check(v.RequireNonEmpty(in.OccasionType), "occasionType", "MISSING_OCCASION_TYPE", "occasion type is required")
	return result(&c)
}

func validateCreateTestimonial(in CreateTestimonialInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Role), "role", "MISSING_ROLE", "role is required").
		Check(v.RequireNonEmpty(in.Content), "content", "MISSING_CONTENT", "content is required").
		Check(in.Rating != nil, "rating", "MISSING_RATING", "rating is required").
		Check(v.RequireNonEmpty(in.Image), "image", "MISSING_IMAGE", "image is required").
		Check(in.Rating == nil || v.IsIntInRange(*in.Rating, minRating, maxRating), "rating", "INVALID_RATING", "rating must be an integer between 1 and 5")
	return result(&c)
}

func validateUpdateTestimonial(in UpdateTestimonialInput) *Error {
	var c v.Checker
	c.Check(setNonEmpty(in.Name), "name", "INVALID_NAME", "name must be a non-empty string").
		Check(setNonEmpty(in.Role), "role", "INVALID_ROLE", "role must be a non-empty string").
		Check(setNonEmpty(in.Content), "content", "INVALID_CONTENT", "content must be a non-empty string").
		Check(!in.Rating.Set || (in.Rating.Present() && v.IsIntInRange(in.Rating.Value, minRating, maxRating)), "rating", "INVALID_RATING", "rating must be an integer between 1 and 5").
		Check(setNonEmpty(in.Image), "image", "INVALID_IMAGE", "image must be a non-empty string").
		Check(setNotNull(in.IsFeatured), "isFeatured", "INVALID_IS_FEATURED", "isFeatured must be a boolean")
	return result(&c)
}

func validateCreateStory(in CreateStoryInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Title), "title", "MISSING_TITLE", "title is required").
		Check(v.RequireNonEmpty(in.Client), "client", "MISSING_CLIENT", "client is required").
		Check(v.RequireNonEmpty(in.Date), "date", "MISSING_DATE", "date is required").
		Check(v.RequireNonEmpty(in.Excerpt), "excerpt", "MISSING_EXCERPT", "excerpt is required").
		Check(v.RequireNonEmpty(in.Content), "content", "MISSING_CONTENT", "content is required").
		Check(v.RequireNonEmpty(in.Image), "image", "MISSING_IMAGE", "image is required")
	return result(&c)
}

func validateUpdateStory(in UpdateStoryInput) *Error {
	var c v.Checker
	c.Check(setNonEmpty(in.Title), "title", "INVALID_TITLE", "title must be a non-empty string").
		Check(setNonEmpty(in.Client), "client", "INVALID_CLIENT", "client must be a non-empty string").
		Check(setNonEmpty(in.Date), "date", "INVALID_DATE", "date must be a non-empty string").
		Check(setNonEmpty(in.Excerpt), "excerpt", "INVALID_EXCERPT", "excerpt must be a non-empty string").
		Check(setNonEmpty(in.Content), "content", "INVALID_CONTENT", "content must be a non-empty string").
		Check(setNonEmpty(in.Image), "image", "INVALID_IMAGE", "image must be a non-empty string")
	return result(&c)
}

func validateCreateComment(in CreateCommentInput) *Error {
	var c v.Checker
	c.Check(in.StoryID > 0, "storyId", "MISSING_STORY_ID", "story id is required").
		Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Email), "email", "MISSING_EMAIL", "email is required").
		Check(v.RequireNonEmpty(in.Message), "message", "MISSING_MESSAGE", "message is required").
		Check(v.IsValidEmail(in.Email), "email", "INVALID_EMAIL", "email is not a valid email address")
	return result(&c)
}

func validateUpsertTrackingCode(in UpsertTrackingCodeInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Type), "type", "MISSING_TYPE", "type is required").
		Check(v.RequireNonEmpty(in.Code), "code", "MISSING_CODE", "code is required").
		Check(v.IsOneOf(models.TrackingCodeType(in.Type), models.TrackingCodeTypes...), "type", "INVALID_TYPE", "type must be meta_pixel or google_adsense")
	return result(&c)
}

func validateCreateHeroSlide(in CreateHeroSlideInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Title), "title", "MISSING_TITLE", "title is required").
		Check(v.RequireNonEmpty(in.Subtitle), "subtitle", "MISSING_SUBTITLE", "subtitle is required").
		Check(v.RequireNonEmpty(in.Description), "description", "MISSING_DESCRIPTION", "description is required").
		Check(v.RequireNonEmpty(in.Image), "image", "MISSING_IMAGE", "image is required").
		Check(v.RequireNonEmpty(in.ButtonText), "buttonText", "MISSING_BUTTON_TEXT", "button text is required").
		Check(v.RequireNonEmpty(in.ButtonLink), "buttonLink", "MISSING_BUTTON_LINK", "button link is required").
		Check(v.IsInt32(*in.DisplayOrder), "displayOrder", "INVALID_DISPLAY_ORDER", "displayOrder is out of range")
	return result(&c)
}

func validateUpdateHeroSlide(in UpdateHeroSlideInput) *Error {
	var c v.Checker
	c.Check(setNonEmpty(in.Title), "title", "INVALID_TITLE", "title must be a non-empty string").
		Check(setNonEmpty(in.Subtitle), "subtitle", "INVALID_SUBTITLE", "subtitle must be a non-empty string").
		Check(setNonEmpty(in.Description), "description", "INVALID_DESCRIPTION", "description must be a non-empty string").
		Check(setNonEmpty(in.Image), "image", "INVALID_IMAGE", "image must be a non-empty string").
		Check(setNonEmpty(in.ButtonText), "buttonText", "INVALID_BUTTON_TEXT", "button text must be a non-empty string").
		Check(setNonEmpty(in.ButtonLink), "buttonLink", "INVALID_BUTTON_LINK", "button link must be a non-empty string").
		Check(setNotNull(in.DisplayOrder) && (!in.DisplayOrder.Set || v.IsInt32(in.DisplayOrder.Value)), "displayOrder", "INVALID_DISPLAY_ORDER", "displayOrder must be an integer in range").
		Check(setNotNull(in.IsActive), "isActive", "INVALID_IS_ACTIVE", "isActive must be a boolean")
	return result(&c)
}

func validateContact(in ContactInput) *Error {
	var c v.Checker
	c.Check(v.RequireNonEmpty(in.Name), "name", "MISSING_NAME", "name is required").
		Check(v.RequireNonEmpty(in.Email), "email", "MISSING_EMAIL", "email is required").
		Check(v.RequireNonEmpty(in.Message), "message", "MISSING_MESSAGE", "message is required").
		Check(v.IsValidEmail(in.Email), "email", "INVALID_EMAIL", "email is not a valid email address")
	return result(&c)
}
