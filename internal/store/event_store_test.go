package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

func galleryFixture() []eventmodels.GalleryItem {
	return []eventmodels.GalleryItem{
		{Type: "image", Src: "1.jpg", Aspect: "landscape"},
		{Type: "video", Src: "2.mp4", Aspect: "landscape"},
		{Type: "image", Src: "3.jpg", Aspect: "portrait"},
	}
}

func TestAppendItemsPreservesOrder(t *testing.T) {
	existing := galleryFixture()
	added := []eventmodels.GalleryItem{
		{Type: "image", Src: "x.jpg", Aspect: "square"},
		{Type: "image", Src: "y.jpg", Aspect: "square"},
	}

	merged := appendItems(existing, added)

	require.Len(t, merged, 5)
	assert.Equal(t, "1.jpg", merged[0].Src)
	assert.Equal(t, "x.jpg", merged[3].Src)
	assert.Equal(t, "y.jpg", merged[4].Src)
	// the input slices are left untouched
	assert.Len(t, existing, 3)
}

func TestAppendItemsToEmptyGallery(t *testing.T) {
	added := []eventmodels.GalleryItem{{Type: "image", Src: "x.jpg"}}

	merged := appendItems(nil, added)

	require.Len(t, merged, 1)
	assert.Equal(t, "x.jpg", merged[0].Src)
}

func TestRemoveAtDropsExactlyOneIndex(t *testing.T) {
	kept := removeAt(galleryFixture(), 1)

	require.Len(t, kept, 2)
	assert.Equal(t, "1.jpg", kept[0].Src)
	assert.Equal(t, "3.jpg", kept[1].Src)
}

func TestRemoveAtOutOfRangeIsNoOp(t *testing.T) {
	items := galleryFixture()

	assert.Equal(t, items, removeAt(items, 10))
	assert.Equal(t, items, removeAt(items, -1))
}

func TestItemsFieldDecodesRawDocuments(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"type": "image", "src": "a.jpg", "aspect": "portrait"},
		"not-a-map",
		map[string]interface{}{"type": "video", "src": "b.mp4", "aspect": "landscape"},
	}

	items := itemsField(raw)

	require.Len(t, items, 2)
	assert.Equal(t, eventmodels.GalleryItem{Type: "image", Src: "a.jpg", Aspect: "portrait"}, items[0])
	assert.Equal(t, eventmodels.GalleryItem{Type: "video", Src: "b.mp4", Aspect: "landscape"}, items[1])
}

func TestItemsFieldMissingOrMalformedYieldsEmptyGallery(t *testing.T) {
	assert.Empty(t, itemsField(nil))
	assert.Empty(t, itemsField("garbage"))
	assert.NotNil(t, itemsField(nil))
}
