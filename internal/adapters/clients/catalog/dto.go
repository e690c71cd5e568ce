package catalog

import "github.com/jsamuelsen11/go-item-service/internal/domain/item"

// itemDTO is the catalog API's item representation. Absent fields are
// sent as null and read back from null.
type itemDTO struct {
	ID       int64   `json:"id,omitempty"`
	Name     *string `json:"item_name"`
	Price    *int64  `json:"price"`
	Quantity *int64  `json:"quantity"`
}

type itemListDTO struct {
	Items []itemDTO `json:"items"`
}

func fromItem(it *item.Item) itemDTO {
	c := it.Clone()
	if c == nil {
		return itemDTO{}
	}
	return itemDTO{Name: c.ItemName, Price: c.Price, Quantity: c.Quantity}
}

func (d itemDTO) toItem() *item.Item {
	return &item.Item{ID: d.ID, ItemName: d.Name, Price: d.Price, Quantity: d.Quantity}
}
