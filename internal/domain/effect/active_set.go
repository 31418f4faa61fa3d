package effect

import "container/list"

// ActiveSet 按插入順序保存存活的軌跡粒子，支持 O(1) 淘汰最舊與按句柄刪除
type ActiveSet struct {
	order *list.List
	index map[Handle]*list.Element
}

func NewActiveSet() *ActiveSet {
	return &ActiveSet{
		order: list.New(),
		index: make(map[Handle]*list.Element),
	}
}

// Push 追加到末尾；句柄已存在時忽略
func (a *ActiveSet) Push(p *Particle) {
	if _, ok := a.index[p.ID]; ok {
		return
	}
	a.index[p.ID] = a.order.PushBack(p)
}

// PopOldest 移除並返回最早加入的粒子
func (a *ActiveSet) PopOldest() *Particle {
	front := a.order.Front()
	if front == nil {
		return nil
	}
	p := a.order.Remove(front).(*Particle)
	delete(a.index, p.ID)
	return p
}

// Remove 刪除指定句柄，不存在時返回 false
func (a *ActiveSet) Remove(h Handle) bool {
	el, ok := a.index[h]
	if !ok {
		return false
	}
	a.order.Remove(el)
	delete(a.index, h)
	return true
}

func (a *ActiveSet) Contains(h Handle) bool {
	_, ok := a.index[h]
	return ok
}

func (a *ActiveSet) Len() int { return a.order.Len() }

// Handles 按插入順序的句柄快照
func (a *ActiveSet) Handles() []Handle {
	out := make([]Handle, 0, a.order.Len())
	for el := a.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Particle).ID)
	}
	return out
}
