package domain

import "time"

// ArticleStatus controls shop-front visibility of an article.
type ArticleStatus string

const (
	ArticleAvailable ArticleStatus = "available"
	ArticleVisible   ArticleStatus = "visible"
	ArticleHidden    ArticleStatus = "hidden"
)

// Category groups articles; categories may nest via ParentCategoryID.
type Category struct {
	ID               int64  `json:"category_id" bson:"category_id"`
	Name             string `json:"name" bson:"name"`
	ImagePath        string `json:"image_path,omitempty" bson:"image_path,omitempty"`
	ParentCategoryID int64  `json:"parent_category_id,omitempty" bson:"parent_category_id,omitempty"`
}

// Article is a sellable catalog item.
type Article struct {
	ID          int64         `json:"article_id" bson:"article_id"`
	Name        string        `json:"name" bson:"name"`
	CategoryID  int64         `json:"category_id" bson:"category_id"`
	Excerpt     string        `json:"excerpt" bson:"excerpt"`
	Description string        `json:"description" bson:"description"`
	Status      ArticleStatus `json:"status" bson:"status"`
	IsPromoted  bool          `json:"is_promoted" bson:"is_promoted"`
	Price       float64       `json:"price" bson:"price"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}
