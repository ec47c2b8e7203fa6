package biz

import "github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"

// Classify 根据情绪值与关注度判断所属象限。
// 情绪值为 0 归入非负一侧 (Ⅰ/Ⅳ)，关注度等于阈值归入高关注一侧 (Ⅰ/Ⅱ)。
func Classify(sentiment, attention, threshold float64) domain.Quadrant {
	high := attention >= threshold
	switch {
	case sentiment >= 0 && high:
		return domain.QuadrantI
	case sentiment < 0 && high:
		return domain.QuadrantII
	case sentiment < 0 && !high:
		return domain.QuadrantIII
	default:
		return domain.QuadrantIV
	}
}
