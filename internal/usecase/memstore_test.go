package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

// =====================
// インメモリのrepository実装（usecaseテスト用）
// =====================

type memStore struct {
	mu sync.Mutex

	items       []model.Item
	inbound     []model.InboundOrder
	outbound    []model.OutboundOrder
	alerts      []model.InventoryAlert
	bills       []model.Bill
	permissions []model.Permission
	roles       []model.Role
	rolePerms   map[int64][]int64

	seq int64
}

func newMemStore() *memStore {
	return &memStore{rolePerms: map[int64][]int64{}}
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

type memSnapshot struct {
	items       []model.Item
	inbound     []model.InboundOrder
	outbound    []model.OutboundOrder
	alerts      []model.InventoryAlert
	bills       []model.Bill
	permissions []model.Permission
	roles       []model.Role
	rolePerms   map[int64][]int64
}

func (s *memStore) snapshot() memSnapshot {
	rp := make(map[int64][]int64, len(s.rolePerms))
	for k, v := range s.rolePerms {
		rp[k] = append([]int64(nil), v...)
	}
	return memSnapshot{
		items:       append([]model.Item(nil), s.items...),
		inbound:     append([]model.InboundOrder(nil), s.inbound...),
		outbound:    append([]model.OutboundOrder(nil), s.outbound...),
		alerts:      append([]model.InventoryAlert(nil), s.alerts...),
		bills:       append([]model.Bill(nil), s.bills...),
		permissions: append([]model.Permission(nil), s.permissions...),
		roles:       append([]model.Role(nil), s.roles...),
		rolePerms:   rp,
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.items = snap.items
	s.inbound = snap.inbound
	s.outbound = snap.outbound
	s.alerts = snap.alerts
	s.bills = snap.bills
	s.permissions = snap.permissions
	s.roles = snap.roles
	s.rolePerms = snap.rolePerms
}

// WithinTx は1本ずつ直列に実行し、エラーなら巻き戻す
type memTxManager struct {
	s   *memStore
	txm sync.Mutex
}

func (m *memTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.txm.Lock()
	defer m.txm.Unlock()

	m.s.mu.Lock()
	snap := m.s.snapshot()
	m.s.mu.Unlock()

	if err := fn(memTxRepos{s: m.s}); err != nil {
		m.s.mu.Lock()
		m.s.restore(snap)
		m.s.mu.Unlock()
		return err
	}
	return nil
}

type memTxRepos struct{ s *memStore }

func (r memTxRepos) Items() repo.ItemRepository                   { return &memItems{r.s} }
func (r memTxRepos) InboundOrders() repo.InboundOrderRepository   { return &memInbound{r.s} }
func (r memTxRepos) OutboundOrders() repo.OutboundOrderRepository { return &memOutbound{r.s} }
func (r memTxRepos) Alerts() repo.AlertRepository                 { return &memAlerts{r.s} }
func (r memTxRepos) Permissions() repo.PermissionRepository       { return &memPermissions{r.s} }
func (r memTxRepos) Roles() repo.RoleRepository                   { return &memRoles{r.s} }

// =====================
// Items
// =====================

type memItems struct{ s *memStore }

func (r *memItems) Create(ctx context.Context, item *model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.SKU == item.SKU {
			return repo.ErrDuplicate
		}
	}
	item.ID = r.s.nextID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.s.items = append(r.s.items, *item)
	return nil
}

func (r *memItems) find(id int64) (int, bool) {
	for i, it := range r.s.items {
		if it.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (r *memItems) FindByID(ctx context.Context, id int64) (model.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.find(id)
	if !ok {
		return model.ItemView{}, repo.ErrNotFound
	}
	return model.ItemView{Item: r.s.items[i]}, nil
}

func (r *memItems) FindByIDForUpdate(ctx context.Context, id int64) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.find(id)
	if !ok {
		return model.Item{}, repo.ErrNotFound
	}
	return r.s.items[i], nil
}

func (r *memItems) List(ctx context.Context) ([]model.ItemView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.ItemView, 0, len(r.s.items))
	for i := len(r.s.items) - 1; i >= 0; i-- {
		out = append(out, model.ItemView{Item: r.s.items[i]})
	}
	return out, nil
}

func (r *memItems) ListAll(ctx context.Context) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]model.Item(nil), r.s.items...), nil
}

func (r *memItems) Update(ctx context.Context, item model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.find(item.ID)
	if !ok {
		return repo.ErrNotFound
	}
	for _, it := range r.s.items {
		if it.ID != item.ID && it.SKU == item.SKU {
			return repo.ErrDuplicate
		}
	}
	item.UpdatedAt = time.Now()
	r.s.items[i] = item
	return nil
}

func (r *memItems) SetQuantity(ctx context.Context, id int64, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.find(id)
	if !ok {
		return repo.ErrNotFound
	}
	r.s.items[i].Quantity = quantity
	return nil
}

func (r *memItems) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.find(id)
	if !ok {
		return repo.ErrNotFound
	}
	r.s.items = append(r.s.items[:i], r.s.items[i+1:]...)
	return nil
}

func (s *memStore) itemName(id int64) *string {
	for _, it := range s.items {
		if it.ID == id {
			name := it.Name
			return &name
		}
	}
	return nil
}

// =====================
// Inbound / Outbound
// =====================

type memInbound struct{ s *memStore }

func (r *memInbound) Create(ctx context.Context, o *model.InboundOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.nextID()
	r.s.inbound = append(r.s.inbound, *o)
	return nil
}

func (r *memInbound) FindByID(ctx context.Context, id int64) (model.InboundOrderView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.inbound {
		if o.ID == id {
			return model.InboundOrderView{InboundOrder: o, ItemName: r.s.itemName(o.ItemID)}, nil
		}
	}
	return model.InboundOrderView{}, repo.ErrNotFound
}

func (r *memInbound) List(ctx context.Context) ([]model.InboundOrderView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.InboundOrderView{}
	for i := len(r.s.inbound) - 1; i >= 0; i-- {
		o := r.s.inbound[i]
		out = append(out, model.InboundOrderView{InboundOrder: o, ItemName: r.s.itemName(o.ItemID)})
	}
	return out, nil
}

type memOutbound struct{ s *memStore }

func (r *memOutbound) Create(ctx context.Context, o *model.OutboundOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.nextID()
	r.s.outbound = append(r.s.outbound, *o)
	return nil
}

func (r *memOutbound) FindByID(ctx context.Context, id int64) (model.OutboundOrderView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.outbound {
		if o.ID == id {
			return model.OutboundOrderView{OutboundOrder: o, ItemName: r.s.itemName(o.ItemID)}, nil
		}
	}
	return model.OutboundOrderView{}, repo.ErrNotFound
}

func (r *memOutbound) List(ctx context.Context) ([]model.OutboundOrderView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.OutboundOrderView{}
	for i := len(r.s.outbound) - 1; i >= 0; i-- {
		o := r.s.outbound[i]
		out = append(out, model.OutboundOrderView{OutboundOrder: o, ItemName: r.s.itemName(o.ItemID)})
	}
	return out, nil
}

// =====================
// Alerts
// =====================

type memAlerts struct{ s *memStore }

func (r *memAlerts) Create(ctx context.Context, a *model.InventoryAlert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.nextID()
	r.s.alerts = append(r.s.alerts, *a)
	return nil
}

func (r *memAlerts) FindByID(ctx context.Context, id int64) (model.InventoryAlertView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.alerts {
		if a.ID == id {
			return model.InventoryAlertView{InventoryAlert: a, ItemName: r.s.itemName(a.ItemID)}, nil
		}
	}
	return model.InventoryAlertView{}, repo.ErrNotFound
}

func (r *memAlerts) List(ctx context.Context) ([]model.InventoryAlertView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.InventoryAlertView{}
	for i := len(r.s.alerts) - 1; i >= 0; i-- {
		a := r.s.alerts[i]
		out = append(out, model.InventoryAlertView{InventoryAlert: a, ItemName: r.s.itemName(a.ItemID)})
	}
	return out, nil
}

// =====================
// Bills
// =====================

type memBills struct{ s *memStore }

func (r *memBills) Create(ctx context.Context, b *model.Bill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.bills {
		if x.BillNo == b.BillNo {
			return repo.ErrDuplicate
		}
	}
	b.ID = r.s.nextID()
	r.s.bills = append(r.s.bills, *b)
	return nil
}

func (r *memBills) FindByID(ctx context.Context, id int64) (model.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Bill{}, repo.ErrNotFound
}

func (r *memBills) List(ctx context.Context) ([]model.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Bill{}
	for i := len(r.s.bills) - 1; i >= 0; i-- {
		out = append(out, r.s.bills[i])
	}
	return out, nil
}

// =====================
// Permissions / Roles
// =====================

type memPermissions struct{ s *memStore }

func (r *memPermissions) Create(ctx context.Context, p *model.Permission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.permissions {
		if x.Code == p.Code {
			return repo.ErrDuplicate
		}
	}
	p.ID = r.s.nextID()
	r.s.permissions = append(r.s.permissions, *p)
	return nil
}

func (r *memPermissions) FindByID(ctx context.Context, id int64) (model.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.permissions {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Permission{}, repo.ErrNotFound
}

func (r *memPermissions) FindByIDs(ctx context.Context, ids []int64) ([]model.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []model.Permission{}
	for _, p := range r.s.permissions {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPermissions) List(ctx context.Context) ([]model.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Permission{}
	for i := len(r.s.permissions) - 1; i >= 0; i-- {
		out = append(out, r.s.permissions[i])
	}
	return out, nil
}

type memRoles struct{ s *memStore }

func (r *memRoles) Create(ctx context.Context, role *model.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.roles {
		if x.Code == role.Code {
			return repo.ErrDuplicate
		}
	}
	role.ID = r.s.nextID()
	r.s.roles = append(r.s.roles, *role)
	return nil
}

func (r *memRoles) withPermissions(role model.Role) model.Role {
	ids := append([]int64(nil), r.s.rolePerms[role.ID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	role.Permissions = []model.Permission{}
	for _, id := range ids {
		for _, p := range r.s.permissions {
			if p.ID == id {
				role.Permissions = append(role.Permissions, p)
			}
		}
	}
	return role
}

func (r *memRoles) FindByID(ctx context.Context, id int64) (model.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.ID == id {
			return r.withPermissions(role), nil
		}
	}
	return model.Role{}, repo.ErrNotFound
}

func (r *memRoles) List(ctx context.Context) ([]model.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Role{}
	for i := len(r.s.roles) - 1; i >= 0; i-- {
		out = append(out, r.withPermissions(r.s.roles[i]))
	}
	return out, nil
}

func (r *memRoles) ReplacePermissions(ctx context.Context, roleID int64, permissions []model.Permission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]int64, 0, len(permissions))
	for _, p := range permissions {
		ids = append(ids, p.ID)
	}
	r.s.rolePerms[roleID] = ids
	return nil
}

var (
	_ repo.TransactionManager     = (*memTxManager)(nil)
	_ repo.ItemRepository         = (*memItems)(nil)
	_ repo.BillRepository         = (*memBills)(nil)
	_ repo.PermissionRepository   = (*memPermissions)(nil)
	_ repo.RoleRepository         = (*memRoles)(nil)
	_ repo.AlertRepository        = (*memAlerts)(nil)
	_ repo.InboundOrderRepository = (*memInbound)(nil)
)
