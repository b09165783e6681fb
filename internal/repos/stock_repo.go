package repos

import (
	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

func (r *StockRepo) ListByOwner(ownerID string) ([]domain.StockItem, error) {
	var out []domain.StockItem
	err := r.db.Select(&out, `
	  SELECT id, owner_id, name, price, stock, description, image, category, last_updated
	  FROM stock_items WHERE owner_id=? ORDER BY last_updated DESC, id`, ownerID)
	return out, err
}

func (r *StockRepo) Get(ownerID, id string) (domain.StockItem, error) {
	var it domain.StockItem
	err := r.db.Get(&it, `
	  SELECT id, owner_id, name, price, stock, description, image, category, last_updated
	  FROM stock_items WHERE owner_id=? AND id=?`, ownerID, id)
	return it, err
}

func (r *StockRepo) Insert(it domain.StockItem) error {
	_, err := r.db.NamedExec(`
	  INSERT INTO stock_items(id, owner_id, name, price, stock, description, image, category, last_updated)
	  VALUES(:id, :owner_id, :name, :price, :stock, :description, :image, :category, :last_updated)`, it)
	return err
}

// Replace swaps the full row whose id matches; returns the number of rows
// touched so callers can distinguish "edited" from "no such item".
func (r *StockRepo) Replace(it domain.StockItem) (int64, error) {
	res, err := r.db.NamedExec(`
	  UPDATE stock_items
	  SET name=:name, price=:price, stock=:stock, description=:description,
	      image=:image, category=:category, last_updated=:last_updated
	  WHERE id=:id AND owner_id=:owner_id`, it)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *StockRepo) Delete(ownerID, id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM stock_items WHERE owner_id=? AND id=?`, ownerID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
