package models

import (
	"time"

	"gorm.io/gorm"
)

// Post 博客文章表
type Post struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // 主键
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`        // 唯一标识
	Title       string         `gorm:"not null" json:"title"`                   // 标题
	Summary     string         `json:"summary"`                                 // 摘要
	Content     string         `gorm:"type:text" json:"content"`                // 正文（Markdown）
	Thumbnail   string         `json:"thumbnail"`                               // 缩略图
	Author      string         `json:"author"`                                  // 作者署名
	Tags        StringArray    `gorm:"type:text" json:"tags"`                   // 标签数组
	IsPublished bool           `gorm:"default:false;index" json:"is_published"` // 是否发布
	PublishedAt *time.Time     `gorm:"index" json:"published_at"`               // 发布时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
