// seehuhn.de/go/highlight - marking text ranges in HTML documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package event

import "sync"

// Queue is a first-in first-out list of tasks.
//
// Posting a task corresponds to a timer with zero delay: the task runs
// once the code which is currently executing, for example an event
// handler, has returned to the event loop and the loop calls [Queue.Run].
//
// The zero value is an empty queue.  Tasks may be posted from any
// goroutine.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// Post appends a task to the queue.
func (q *Queue) Post(task func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Len returns the number of waiting tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Run executes tasks until the queue is empty, and returns the number of
// tasks run.  Tasks posted by a running task are executed in the same
// call, after all tasks which were already waiting.
func (q *Queue) Run() int {
	count := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return count
		}
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
		count++
	}
}
