package main

import (
	"image"
	"sync"
)

// StripCache keeps the most recently used thumbnail strips in memory.
type StripCache struct {
	mu       sync.Mutex
	capacity int
	cache    map[string]*CacheNode
	head     *CacheNode
	tail     *CacheNode
}

type CacheNode struct {
	key   string
	image image.Image
	prev  *CacheNode
	next  *CacheNode
}

func NewStripCache(capacity int) *StripCache {
	return &StripCache{
		capacity: max(capacity, 1),
		cache:    make(map[string]*CacheNode),
	}
}

func (c *StripCache) moveToFront(node *CacheNode) {
	if node == c.head {
		return
	}
	if node == c.tail {
		c.tail = node.prev
		c.tail.next = nil
	} else if node.prev != nil {
		node.prev.next = node.next
		node.next.prev = node.prev
	}
	node.prev = nil
	node.next = c.head
	if c.head != nil {
		c.head.prev = node
	}
	c.head = node
}

func (c *StripCache) Add(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.cache[key]; exists {
		node.image = img
		c.moveToFront(node)
		return
	}

	node := &CacheNode{key: key, image: img}
	c.cache[key] = node

	if c.head == nil {
		c.head = node
		c.tail = node
	} else {
		node.next = c.head
		c.head.prev = node
		c.head = node
	}

	if len(c.cache) > c.capacity {
		delete(c.cache, c.tail.key)
		c.tail = c.tail.prev
		if c.tail != nil {
			c.tail.next = nil
		}
	}
}

func (c *StripCache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.cache[key]; exists {
		c.moveToFront(node)
		return node.image, true
	}
	return nil, false
}

func (c *StripCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.cache)
}
