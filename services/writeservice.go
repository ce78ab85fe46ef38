package services

import (
	"context"
	"time"

	"codewithbuder/apperror"
	"codewithbuder/dto"
	"codewithbuder/model"
	"codewithbuder/store"
)

// IdentityResolver is the slice of the session binder the gateway needs for
// attribution.
type IdentityResolver interface {
	Identity() *model.Identity
}

// WriteGateway validates nothing itself; it normalizes outgoing records
// (timestamps, attribution, default fields) and hands them to the store.
// Nothing is kept locally on failure.
type WriteGateway struct {
	store  store.Store
	binder IdentityResolver
	now    func() time.Time
}

func NewWriteGateway(st store.Store, binder IdentityResolver) *WriteGateway {
	return &WriteGateway{store: st, binder: binder, now: time.Now}
}

func (g *WriteGateway) timestamp() string {
	return g.now().UTC().Format(time.RFC3339)
}

// AddCourse merges defaults under the caller's fields, resolves instructor
// attribution from the current profile document and creates the course. It
// returns once the store acknowledges the create; the collection sync picks
// the new document up on its own.
func (g *WriteGateway) AddCourse(ctx context.Context, req dto.AddCourseRequest) (string, error) {
	course := model.Course{
		Title:            req.Title,
		Category:         req.Category,
		Description:      req.Description,
		Image:            req.Image,
		Curriculum:       req.Curriculum,
		Requirements:     req.Requirements,
		LearningOutcomes: req.LearningOutcomes,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		CreatedAt:        g.timestamp(),
		CreatedBy:        "unknown",
		Instructor:       "Unknown Instructor",
	}
	if course.Curriculum == nil {
		course.Curriculum = []string{}
	}

	if id := g.binder.Identity(); id != nil {
		course.CreatedBy = id.SessionID
		course.InstructorID = id.SessionID

		// A missing or unreadable profile is an expected gap, handled by
		// the fallback attribution; it never fails the write.
		doc, err := g.store.GetDocument(ctx, "users", id.SessionID)
		if err == nil && doc != nil {
			if name := stringField(doc.Fields, "fullName"); name != "" {
				course.Instructor = name
			}
			course.InstructorImage = stringField(doc.Fields, "photoURL")
		}
	}

	docID, err := g.store.CreateDocument(ctx, "courses", course)
	if err != nil {
		return "", apperror.WriteFailed("courses", err)
	}
	return docID, nil
}

// AddBlog applies the draft-record defaults for any bookkeeping field the
// caller omitted; caller values win when present.
func (g *WriteGateway) AddBlog(ctx context.Context, req dto.AddBlogRequest) (string, error) {
	blog := model.Blog{
		Title:           req.Title,
		Category:        req.Category,
		Content:         req.Content,
		Tags:            req.Tags,
		Status:          req.Status,
		PublishDate:     req.PublishDate,
		IsFeatured:      req.IsFeatured,
		Author:          req.Author,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Slug:            req.Slug,
		ImagePreview:    req.ImagePreview,
		CreatedAt:       req.CreatedAt,
		CreatedBy:       req.CreatedBy,
	}
	if blog.CreatedAt == "" {
		blog.CreatedAt = g.timestamp()
	}
	if blog.CreatedBy == "" {
		if id := g.binder.Identity(); id != nil {
			blog.CreatedBy = id.SessionID
		} else {
			blog.CreatedBy = "unknown"
		}
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if blog.Status == "" {
		blog.Status = "draft"
	}

	docID, err := g.store.CreateDocument(ctx, "blogs", blog)
	if err != nil {
		return "", apperror.WriteFailed("blogs", err)
	}
	return docID, nil
}

// AddContactMessage stamps the submission time; contact messages carry no
// attribution.
func (g *WriteGateway) AddContactMessage(ctx context.Context, req dto.ContactRequest) (string, error) {
	msg := model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: g.timestamp(),
	}

	docID, err := g.store.CreateDocument(ctx, "contacts", msg)
	if err != nil {
		return "", apperror.WriteFailed("contacts", err)
	}
	return docID, nil
}
