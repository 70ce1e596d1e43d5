package cache

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizzone"

	ServiceCatalog   = "catalog"
	ServiceHoroscope = "horoscope"
	ServiceHistory   = "history"

	allIdentifier = "all"
)

// GenerateCacheKey builds "quizzone:service:type:id", appending paramsKey
// joined by "_" as a final segment when present.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	key := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) == 0 {
		return key
	}
	return key + ":" + strings.Join(paramsKey, "_")
}

// ServicePrefix is the prefix shared by every key of serviceName.
func ServicePrefix(serviceName string) string {
	return GlobalKeyPrefix + ":" + serviceName + ":"
}

func HomeKey() string {
	return GenerateCacheKey(ServiceCatalog, "home", allIdentifier)
}

func CategoriesKey() string {
	return GenerateCacheKey(ServiceCatalog, "categories", allIdentifier)
}

// CategoryPageKey keys one page of a category listing. An empty subSlug keeps
// its slot, giving "science:_2" for the unfiltered listing.
func CategoryPageKey(slug, subSlug string, page int) string {
	return GenerateCacheKey(ServiceCatalog, "category", slug, subSlug, strconv.Itoa(page))
}

// HoroscopeDayKey takes the date already formatted as YYYY-MM-DD.
func HoroscopeDayKey(day string) string {
	return GenerateCacheKey(ServiceHoroscope, "day", day)
}

func HistoryDayKey(month, day int) string {
	return GenerateCacheKey(ServiceHistory, "day", fmt.Sprintf("%02d-%02d", month, day))
}

func HistoryCategoriesKey() string {
	return GenerateCacheKey(ServiceHistory, "categories", allIdentifier)
}

func HistoryCategoryKey(category string) string {
	return GenerateCacheKey(ServiceHistory, "category", category)
}
